package middleware

import (
	"net/http"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/SakshiM24/Employee-Attendance-System/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// ManagerOnly gates the team view, filters and export behind the manager role.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleManager {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
