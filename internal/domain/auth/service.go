package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string)

	// OAuth login (optional, enabled when Google credentials are configured)
	GoogleRedirect(ctx context.Context) (url string, state string, err error)
	GoogleCallback(ctx context.Context, code string, session SessionTrackingRequest) (LoginResponse, error)
}
