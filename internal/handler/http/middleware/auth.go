package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/auth"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/response"
)

type contextKey string

const (
	ContextKeyUserID     contextKey = "auth.user_id"
	ContextKeyEmployeeID contextKey = "auth.employee_id"
	ContextKeyRole       contextKey = "auth.role"
)

// AuthRequired verifies that the request carries a valid access token and
// copies its identity claims into the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
			ctx = audit.WithActor(ctx, userID)
			if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
				ctx = context.WithValue(ctx, ContextKeyEmployeeID, employeeID)
			}
			if role, ok := claims["role"].(string); ok {
				ctx = context.WithValue(ctx, ContextKeyRole, role)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// UserID returns the authenticated user's id, or "" outside AuthRequired.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyUserID).(string)
	return id
}

// EmployeeID returns the employee record linked to the authenticated user, if
// any.
func EmployeeID(ctx context.Context) *string {
	if id, ok := ctx.Value(ContextKeyEmployeeID).(string); ok && id != "" {
		return &id
	}
	return nil
}

// Role returns the authenticated user's role claim.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(ContextKeyRole).(string)
	return role
}
