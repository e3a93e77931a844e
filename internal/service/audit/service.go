package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
)

type AuditServiceImpl struct {
	logRepository audit.LogRepository
}

func NewAuditService(logRepository audit.LogRepository) audit.AuditService {
	return &AuditServiceImpl{logRepository: logRepository}
}

// Record persists an audit entry best-effort. A failed write is logged and
// swallowed so it can never fail the mutation it trails.
func (a *AuditServiceImpl) Record(ctx context.Context, entry audit.LogEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.UserID == nil {
		entry.UserID = audit.Actor(ctx)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := a.logRepository.Insert(ctx, entry); err != nil {
		slog.Error("failed to write audit log",
			"action", entry.Action,
			"entity", entry.Entity,
			"error", err,
		)
	}
}

func (a *AuditServiceImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.LogEntry, int64, error) {
	filter.Normalize()
	return a.logRepository.List(ctx, filter)
}
