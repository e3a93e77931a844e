package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/event"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `
	id, title, description, start_date, end_date, category, location,
	created_by, created_at, updated_at
`

func scanEvent(row pgx.Row) (event.Event, error) {
	var e event.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
		&e.Category, &e.Location, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *eventRepository) Create(ctx context.Context, e event.Event) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO events (title, description, start_date, end_date, category, location, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`,
		e.Title, e.Description, e.StartDate, e.EndDate, e.Category, e.Location, e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return event.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEvent(q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

func (r *eventRepository) ListByRange(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	// Overlap test: an event intersects [from, to] when it starts before the
	// range ends and ends after the range starts.
	rows, err := q.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date, title
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, req event.UpdateEventRequest) error {
	q := GetQuerier(ctx, r.db)

	set := "updated_at = NOW()"
	args := []interface{}{}
	argIdx := 1

	addField := func(column string, value interface{}) {
		set += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Title != nil {
		addField("title", *req.Title)
	}
	if req.Description != nil {
		addField("description", *req.Description)
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start_date: %w", err)
		}
		addField("start_date", startDate)
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end_date: %w", err)
		}
		addField("end_date", endDate)
	}
	if req.Category != nil {
		addField("category", *req.Category)
	}
	if req.Location != nil {
		addField("location", *req.Location)
	}

	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d", set, argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT category, COUNT(*) FROM events GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count events by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = count
	}
	return counts, rows.Err()
}
