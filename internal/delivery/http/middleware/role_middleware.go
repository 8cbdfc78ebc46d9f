package middleware

import (
	"net/http"
	"slices"

	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/pkg/response"
)

// RequireRole lets through callers whose role, set by AuthMiddleware, is one
// of allowedRoles.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !slices.Contains(allowedRoles, role) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireAdminFunc wraps a single handler function with RequireAdmin.
func RequireAdminFunc(next http.HandlerFunc) http.Handler {
	return RequireAdmin(next)
}
