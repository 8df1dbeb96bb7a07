package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/ordermanager/pkg/auth"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" manager ")
	assert.True(t, ok)
	assert.Equal(t, RoleManager, r)

	_, ok = ParseRole("ROOT")
	assert.False(t, ok)
}

func TestCan(t *testing.T) {
	assert.True(t, Can(RoleAdmin, AdminDelete))
	assert.True(t, Can(RoleAdmin, ManagerRead))
	assert.True(t, Can(RoleManager, ManagerUpdate))
	assert.False(t, Can(RoleManager, AdminRead))
	assert.False(t, Can(RoleUser, ManagerRead))
	assert.Empty(t, Permissions(RoleUser))
}

func TestPermissionsReturnsACopy(t *testing.T) {
	p := Permissions(RoleManager)
	p[0] = AdminDelete
	assert.False(t, Can(RoleManager, AdminDelete))
}

func serve(h func(http.Handler) http.Handler, role, method string) int {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	req := httptest.NewRequest(method, "/api/v1/management", nil)
	if role != "" {
		req = req.WithContext(auth.WithPrincipal(req.Context(), Grant(auth.Principal{CustomerID: 1, Role: role})))
	}
	rec := httptest.NewRecorder()
	h(ok).ServeHTTP(rec, req)
	return rec.Code
}

func TestGrant(t *testing.T) {
	p := Grant(auth.Principal{CustomerID: 2, Role: "MANAGER"})
	assert.Equal(t, []string{"management:read", "management:create", "management:update", "management:delete"}, p.Permissions)

	assert.Empty(t, Grant(auth.Principal{Role: "USER"}).Permissions)
	assert.Empty(t, Grant(auth.Principal{Role: "ROOT"}).Permissions)
}

func TestHasAnyPermissionIgnoresRoleWithoutGrant(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{CustomerID: 1, Role: "ADMIN"}))
	rec := httptest.NewRecorder()
	HasAnyPermission(AdminRead)(ok).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHasRole(t *testing.T) {
	mw := HasRole(RoleAdmin)
	assert.Equal(t, http.StatusOK, serve(mw, "ADMIN", http.MethodGet))
	assert.Equal(t, http.StatusForbidden, serve(mw, "MANAGER", http.MethodGet))
	assert.Equal(t, http.StatusForbidden, serve(mw, "", http.MethodGet))
}

func TestHasAnyPermission(t *testing.T) {
	mw := HasAnyPermission(AdminCreate, ManagerCreate)
	assert.Equal(t, http.StatusOK, serve(mw, "MANAGER", http.MethodPost))
	assert.Equal(t, http.StatusForbidden, serve(mw, "USER", http.MethodPost))
}

func TestManagementPolicy(t *testing.T) {
	cases := []struct {
		role   string
		method string
		want   int
	}{
		{"ADMIN", http.MethodGet, http.StatusOK},
		{"ADMIN", http.MethodPost, http.StatusOK},
		{"ADMIN", http.MethodPut, http.StatusOK},
		{"ADMIN", http.MethodDelete, http.StatusOK},
		{"MANAGER", http.MethodGet, http.StatusOK},
		{"MANAGER", http.MethodPost, http.StatusOK},
		{"MANAGER", http.MethodPut, http.StatusForbidden},
		{"MANAGER", http.MethodDelete, http.StatusForbidden},
		{"USER", http.MethodGet, http.StatusForbidden},
		{"ADMIN", http.MethodPatch, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.role+" "+tc.method, func(t *testing.T) {
			assert.Equal(t, tc.want, serve(Management, tc.role, tc.method))
		})
	}
}
