package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/auth"
	"github.com/peopledesk/hris-backend-go/internal/domain/user"
	"github.com/peopledesk/hris-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/hris-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedAttempts = 5
	throttleWindow    = 15 * time.Minute
)

type AuthServiceImpl struct {
	userRepository user.UserRepository
	attemptRepo    audit.LoginAttemptRepository
	jwtService     jwt.Service
	googleService  oauth.GoogleService
	auditRecorder  audit.Recorder
	googleEnabled  bool
}

func NewAuthService(
	userRepository user.UserRepository,
	attemptRepo audit.LoginAttemptRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	auditRecorder audit.Recorder,
	googleEnabled bool,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepository: userRepository,
		attemptRepo:    attemptRepo,
		jwtService:     jwtService,
		googleService:  googleService,
		auditRecorder:  auditRecorder,
		googleEnabled:  googleEnabled,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	// Throttle before touching credentials so a locked account leaks nothing.
	failures, err := a.attemptRepo.CountRecentFailures(ctx, req.Email, time.Now().Add(-throttleWindow))
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to check login attempts: %w", err)
	}
	if failures >= maxFailedAttempts {
		return auth.LoginResponse{}, auth.ErrTooManyAttempts
	}

	userData, err := a.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			a.recordAttempt(ctx, req.Email, session, false)
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if userData.PasswordHash == nil {
		a.recordAttempt(ctx, req.Email, session, false)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		a.recordAttempt(ctx, req.Email, session, false)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	a.recordAttempt(ctx, req.Email, session, true)

	resp, err := a.issueTokens(userData)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	a.auditRecorder.Record(ctx, audit.LogEntry{
		UserID:    &userData.ID,
		Action:    audit.ActionLogin,
		Entity:    "user",
		EntityID:  &userData.ID,
		IPAddress: &session.IPAddress,
	})

	return resp, nil
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	userID, err := a.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, err
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	a.jwtService.RevokeToken(refreshToken)

	if userID, err := a.jwtService.ParseRefreshToken(refreshToken); err == nil {
		a.auditRecorder.Record(ctx, audit.LogEntry{
			UserID:   &userID,
			Action:   audit.ActionLogout,
			Entity:   "user",
			EntityID: &userID,
		})
	}
}

func (a *AuthServiceImpl) GoogleRedirect(ctx context.Context) (string, string, error) {
	if !a.googleEnabled {
		return "", "", auth.ErrOAuthNotConfigured
	}

	// The handler round-trips the state through a short-lived cookie and
	// compares it on callback.
	state := a.googleService.GenerateState()
	return a.googleService.RedirectURL(state), state, nil
}

func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, code string, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if !a.googleEnabled {
		return auth.LoginResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil || !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.userRepository.GetByOAuth(ctx, "google", info.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, err
		}
		// Fall back to email so existing accounts can link their Google login.
		userData, err = a.userRepository.GetByEmail(ctx, info.Email)
		if err != nil {
			a.recordAttempt(ctx, info.Email, session, false)
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
	}

	a.recordAttempt(ctx, userData.Email, session, true)

	resp, err := a.issueTokens(userData)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	a.auditRecorder.Record(ctx, audit.LogEntry{
		UserID:    &userData.ID,
		Action:    audit.ActionLogin,
		Entity:    "user",
		EntityID:  &userData.ID,
		IPAddress: &session.IPAddress,
	})

	return resp, nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.LoginResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		Role:                  string(userData.Role),
	}, nil
}

func (a *AuthServiceImpl) recordAttempt(ctx context.Context, email string, session auth.SessionTrackingRequest, success bool) {
	attempt := audit.LoginAttempt{
		ID:          uuid.NewString(),
		Email:       email,
		IPAddress:   session.IPAddress,
		Success:     success,
		AttemptedAt: time.Now(),
	}
	if session.UserAgent != "" {
		attempt.UserAgent = &session.UserAgent
	}

	if err := a.attemptRepo.Insert(ctx, attempt); err != nil {
		slog.Error("failed to record login attempt", "email", email, "error", err)
	}
}
