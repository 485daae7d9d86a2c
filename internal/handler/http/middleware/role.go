package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/response"
)

// RequireRole allows the request through only when the authenticated user
// has one of roles. Must run after AuthRequired.
func RequireRole(roles ...lecturer.Role) func(http.Handler) http.Handler {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	required := strings.Join(names, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Unauthorized")
				return
			}

			if !slices.Contains(roles, claims.Role) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", required, claims.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
