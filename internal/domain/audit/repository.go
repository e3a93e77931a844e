package audit

import (
	"context"
	"time"
)

type LogRepository interface {
	Insert(ctx context.Context, entry LogEntry) error
	List(ctx context.Context, filter ListFilter) ([]LogEntry, int64, error)
}

type LoginAttemptRepository interface {
	Insert(ctx context.Context, attempt LoginAttempt) error

	// CountRecentFailures counts failed attempts for the email since the
	// cutoff, feeding the login throttle.
	CountRecentFailures(ctx context.Context, email string, since time.Time) (int64, error)
}

// Recorder is the audit sink handed to the other services. Record must never
// fail the caller: persistence problems are logged and swallowed.
type Recorder interface {
	Record(ctx context.Context, entry LogEntry)
}

type AuditService interface {
	Recorder
	List(ctx context.Context, filter ListFilter) ([]LogEntry, int64, error)
}
