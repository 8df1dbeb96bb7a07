// Package rbac holds the closed set of roles, the static role → permission
// table and the middleware that enforces them.
package rbac

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/ordermanager/pkg/auth"
	"github.com/shashiranjanraj/ordermanager/pkg/collection"
	"github.com/shashiranjanraj/ordermanager/pkg/response"
)

// Role is one of USER, MANAGER or ADMIN.
type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Permission is a fine-grained authority granted through a role.
type Permission string

const (
	AdminRead     Permission = "admin:read"
	AdminCreate   Permission = "admin:create"
	AdminUpdate   Permission = "admin:update"
	AdminDelete   Permission = "admin:delete"
	ManagerRead   Permission = "management:read"
	ManagerCreate Permission = "management:create"
	ManagerUpdate Permission = "management:update"
	ManagerDelete Permission = "management:delete"
)

var grants = map[Role][]Permission{
	RoleUser: nil,
	RoleManager: {
		ManagerRead, ManagerCreate, ManagerUpdate, ManagerDelete,
	},
	RoleAdmin: {
		AdminRead, AdminCreate, AdminUpdate, AdminDelete,
		ManagerRead, ManagerCreate, ManagerUpdate, ManagerDelete,
	},
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := grants[r]
	return r, ok
}

// Permissions returns a copy of the permissions granted to role.
func Permissions(role Role) []Permission {
	return append([]Permission(nil), grants[role]...)
}

// Can reports whether role carries perm.
func Can(role Role, perm Permission) bool {
	for _, p := range grants[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// Grant returns p with the permissions of its role filled in. Unknown roles
// get none.
func Grant(p auth.Principal) auth.Principal {
	role, _ := ParseRole(p.Role)
	p.Permissions = collection.Map(Permissions(role), func(perm Permission) string { return string(perm) })
	return p
}

func currentRole(r *http.Request) (Role, bool) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		return "", false
	}
	return ParseRole(p.Role)
}

// HasRole returns middleware that allows access only to the given roles.
// Requires the authentication middleware to have already run.
func HasRole(roles ...Role) func(http.Handler) http.Handler {
	allowed := make(map[Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := currentRole(r)
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasAnyPermission lets the request through when the caller's principal
// holds at least one of perms.
func HasAnyPermission(perms ...Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.FromContext(r.Context())
			if !ok || !holdsAny(p, perms) {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// managementPolicy maps an HTTP verb to the permissions that unlock it under
// /api/v1/management. PUT and DELETE are admin-only.
var managementPolicy = map[string][]Permission{
	http.MethodGet:    {AdminRead, ManagerRead},
	http.MethodPost:   {AdminCreate, ManagerCreate},
	http.MethodPut:    {AdminUpdate},
	http.MethodDelete: {AdminDelete},
}

// Management enforces the role and per-verb permission rules of the
// management API. Verbs missing from the policy are refused.
func Management(next http.Handler) http.Handler {
	byMethod := make(map[string]http.Handler, len(managementPolicy))
	for method, perms := range managementPolicy {
		byMethod[method] = HasAnyPermission(perms...)(next)
	}
	return HasRole(RoleAdmin, RoleManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := byMethod[r.Method]
		if !ok {
			response.Forbidden(w)
			return
		}
		h.ServeHTTP(w, r)
	}))
}

func holdsAny(p auth.Principal, perms []Permission) bool {
	for _, want := range perms {
		for _, held := range p.Permissions {
			if held == string(want) {
				return true
			}
		}
	}
	return false
}
