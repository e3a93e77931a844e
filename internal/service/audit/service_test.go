package audit

import (
	"context"
	"errors"
	"testing"

	domain "github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	inserted  []domain.LogEntry
	insertErr error
}

func (f *fakeLogRepo) Insert(ctx context.Context, entry domain.LogEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, entry)
	return nil
}

func (f *fakeLogRepo) List(ctx context.Context, filter domain.ListFilter) ([]domain.LogEntry, int64, error) {
	return nil, 0, nil
}

func TestRecord(t *testing.T) {
	t.Run("stamps the acting user from the context", func(t *testing.T) {
		repo := &fakeLogRepo{}
		svc := NewAuditService(repo)

		ctx := domain.WithActor(context.Background(), "user-7")
		svc.Record(ctx, domain.LogEntry{
			Action: domain.ActionLeaveReject,
			Entity: "leave_request",
		})

		require.Len(t, repo.inserted, 1)
		entry := repo.inserted[0]
		require.NotNil(t, entry.UserID)
		assert.Equal(t, "user-7", *entry.UserID)
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("keeps an explicit user id", func(t *testing.T) {
		repo := &fakeLogRepo{}
		svc := NewAuditService(repo)

		explicit := "user-1"
		ctx := domain.WithActor(context.Background(), "user-7")
		svc.Record(ctx, domain.LogEntry{
			Action: domain.ActionLogin,
			Entity: "user",
			UserID: &explicit,
		})

		require.Len(t, repo.inserted, 1)
		assert.Equal(t, "user-1", *repo.inserted[0].UserID)
	})

	t.Run("no actor outside an authenticated request", func(t *testing.T) {
		repo := &fakeLogRepo{}
		svc := NewAuditService(repo)

		svc.Record(context.Background(), domain.LogEntry{
			Action: domain.ActionClockOut,
			Entity: "attendance",
		})

		require.Len(t, repo.inserted, 1)
		assert.Nil(t, repo.inserted[0].UserID)
	})

	t.Run("swallows persistence errors", func(t *testing.T) {
		repo := &fakeLogRepo{insertErr: errors.New("connection reset")}
		svc := NewAuditService(repo)

		// Must not panic or surface the error.
		svc.Record(context.Background(), domain.LogEntry{
			Action: domain.ActionLogout,
			Entity: "user",
		})
		assert.Empty(t, repo.inserted)
	})
}
