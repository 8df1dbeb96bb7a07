package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shashiranjanraj/ordermanager/pkg/openapi"
	"github.com/shashiranjanraj/ordermanager/pkg/router"
)

var routes = []router.Route{
	{Method: http.MethodGet, Path: "/api/orders/{id}", Name: "orders.show"},
	{Method: http.MethodDelete, Path: "/api/orders/{id}", Name: "orders.destroy"},
	{Method: http.MethodPost, Path: "/api/v1/auth/authenticate", Name: "auth.authenticate", Public: true},
	{Method: http.MethodGet, Path: "/api/product-orders/{productId}/{orderId}"},
	{Method: http.MethodGet, Path: "/api/customers/byName", Name: "customers.by_name_alias", AliasOf: "customers.by_name"},
}

func TestBuild(t *testing.T) {
	doc := openapi.Build(openapi.Info{Title: "orders", Version: "1"}, routes)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.Contains(t, doc.Paths, "/api/orders/{id}")

	show := doc.Paths["/api/orders/{id}"]["get"]
	assert.Equal(t, "orders.show", show.OperationID)
	assert.Equal(t, []string{"orders"}, show.Tags)
	require.Len(t, show.Parameters, 1)
	assert.Equal(t, "id", show.Parameters[0].Name)
	assert.NotEmpty(t, show.Security)
	assert.Contains(t, doc.Paths["/api/orders/{id}"]["delete"].Responses, "204")

	login := doc.Paths["/api/v1/auth/authenticate"]["post"]
	assert.Empty(t, login.Security)
	assert.NotNil(t, login.RequestBody)
	assert.Equal(t, []string{"auth"}, login.Tags)

	line := doc.Paths["/api/product-orders/{productId}/{orderId}"]["get"]
	assert.Equal(t, "get_api_product-orders_productId_orderId", line.OperationID)
	assert.Len(t, line.Parameters, 2)
	assert.False(t, line.Deprecated)

	assert.True(t, doc.Paths["/api/customers/byName"]["get"].Deprecated)
}

func TestHandlerServesJSONAndYAML(t *testing.T) {
	h := openapi.Handler(openapi.Info{Title: "orders", Version: "1"}, func() []router.Route { return routes })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v3/api-docs", nil))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v3/api-docs.yaml", nil))
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &y))
	assert.Contains(t, y["paths"], "/api/orders/{id}")
}
