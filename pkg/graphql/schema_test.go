package graphql_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gql "github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ordermanager/pkg/graphql"
)

func echoSchema(t *testing.T) gql.Schema {
	t.Helper()
	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"echo": &gql.Field{
				Type: gql.String,
				Args: gql.FieldConfigArgument{"say": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)}},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return p.Args["say"], nil
				},
			},
		},
	})
	schema, err := graphql.NewSchema(query)
	require.NoError(t, err)
	return schema
}

func post(t *testing.T, h http.HandlerFunc, body string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(body)))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestHandlerRunsQueryWithVariables(t *testing.T) {
	h := graphql.Handler(echoSchema(t))

	code, out := post(t, h, `{"query":"query($s:String!){ echo(say:$s) }","variables":{"s":"hi"}}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"echo": "hi"}, out["data"])
}

func TestHandlerReportsQueryErrors(t *testing.T) {
	h := graphql.Handler(echoSchema(t))

	code, out := post(t, h, `{"query":"{ nope }"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, out["errors"])
}

func TestHandlerRejectsMissingQuery(t *testing.T) {
	h := graphql.Handler(echoSchema(t))

	code, out := post(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.EqualValues(t, 400, out["status"])
}
