package middleware

import (
	"net/http"

	"github.com/peopledesk/hris-backend-go/internal/domain/user"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/response"
)

// RequirePermission gates a route on one permission. The decision comes from
// the role/permission table, so a denial always names both the role and the
// missing permission.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := user.Role(Role(r.Context()))

			decision := user.Decide(role, permission)
			if !decision.Allowed {
				response.Forbidden(w, decision.Reason)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
