package event

import (
	"context"
	"time"
)

type EventRepository interface {
	Create(ctx context.Context, e Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)

	// ListByRange returns events overlapping the inclusive range, ordered by
	// start date.
	ListByRange(ctx context.Context, from, to time.Time) ([]Event, error)
	Update(ctx context.Context, req UpdateEventRequest) error
	Delete(ctx context.Context, id string) error

	// CountByCategory feeds the calendar legend.
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

type EventService interface {
	Create(ctx context.Context, req CreateEventRequest) (Event, error)
	Update(ctx context.Context, req UpdateEventRequest) (Event, error)
	Delete(ctx context.Context, id string) error
	ListMonth(ctx context.Context, year int, month time.Month) ([]Event, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)
	CategoryCounts(ctx context.Context) (map[string]int64, error)
}
