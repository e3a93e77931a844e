package auth

import (
	"context"
	"testing"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/auth"
	"github.com/peopledesk/hris-backend-go/internal/domain/user"
	"github.com/peopledesk/hris-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error { return nil }

type fakeAttemptRepo struct {
	failures int64
	inserted []audit.LoginAttempt
}

func (f *fakeAttemptRepo) Insert(ctx context.Context, attempt audit.LoginAttempt) error {
	f.inserted = append(f.inserted, attempt)
	if !attempt.Success {
		f.failures++
	}
	return nil
}

func (f *fakeAttemptRepo) CountRecentFailures(ctx context.Context, email string, since time.Time) (int64, error) {
	return f.failures, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, entry audit.LogEntry) {}

func newTestService(t *testing.T, attemptRepo *fakeAttemptRepo) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	userRepo := &fakeUserRepo{users: map[string]user.User{
		"admin@example.com": {
			ID:           "user-1",
			Email:        "admin@example.com",
			PasswordHash: &hashed,
			Role:         user.RoleAdmin,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	return NewAuthService(userRepo, attemptRepo, jwtService, nil, nopRecorder{}, false)
}

func TestLogin(t *testing.T) {
	session := auth.SessionTrackingRequest{IPAddress: "10.0.0.1", UserAgent: "test"}

	t.Run("valid credentials issue both tokens", func(t *testing.T) {
		svc := newTestService(t, &fakeAttemptRepo{})

		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct-horse",
		}, session)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "admin", resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		attempts := &fakeAttemptRepo{}
		svc := newTestService(t, attempts)

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		}, session)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		require.Len(t, attempts.inserted, 1)
		assert.False(t, attempts.inserted[0].Success)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		svc := newTestService(t, &fakeAttemptRepo{})

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		}, session)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("throttled after repeated failures", func(t *testing.T) {
		attempts := &fakeAttemptRepo{failures: 5}
		svc := newTestService(t, attempts)

		// Even the right password is refused while throttled.
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct-horse",
		}, session)
		assert.ErrorIs(t, err, auth.ErrTooManyAttempts)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("valid refresh token issues a new access token", func(t *testing.T) {
		svc := newTestService(t, &fakeAttemptRepo{})

		login, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct-horse",
		}, auth.SessionTrackingRequest{})
		require.NoError(t, err)

		refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := newTestService(t, &fakeAttemptRepo{})

		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("revoked token is refused", func(t *testing.T) {
		svc := newTestService(t, &fakeAttemptRepo{})

		login, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct-horse",
		}, auth.SessionTrackingRequest{})
		require.NoError(t, err)

		svc.Logout(context.Background(), login.RefreshToken)

		_, err = svc.Refresh(context.Background(), login.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestGoogleRedirectDisabled(t *testing.T) {
	svc := newTestService(t, &fakeAttemptRepo{})

	_, _, err := svc.GoogleRedirect(context.Background())
	assert.ErrorIs(t, err, auth.ErrOAuthNotConfigured)
}
