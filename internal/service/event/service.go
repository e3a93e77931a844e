package event

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/event"
)

type EventServiceImpl struct {
	eventRepository event.EventRepository
	auditRecorder   audit.Recorder
}

func NewEventService(eventRepository event.EventRepository, auditRecorder audit.Recorder) event.EventService {
	return &EventServiceImpl{
		eventRepository: eventRepository,
		auditRecorder:   auditRecorder,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, req event.CreateEventRequest) (event.Event, error) {
	if err := req.Validate(); err != nil {
		return event.Event{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return event.Event{}, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return event.Event{}, fmt.Errorf("invalid end_date: %w", err)
	}

	created, err := s.eventRepository.Create(ctx, event.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Category:    req.Category,
		Location:    req.Location,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return event.Event{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		UserID:   req.CreatedBy,
		Action:   audit.ActionEventCreate,
		Entity:   "event",
		EntityID: &created.ID,
	})

	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, req event.UpdateEventRequest) (event.Event, error) {
	if err := req.Validate(); err != nil {
		return event.Event{}, err
	}

	existing, err := s.eventRepository.GetByID(ctx, req.ID)
	if err != nil {
		return event.Event{}, err
	}

	// Recheck range ordering against whichever bound survives the update.
	start, end := existing.StartDate, existing.EndDate
	if req.StartDate != nil {
		start, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		end, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if end.Before(start) {
		return event.Event{}, event.ErrEndBeforeStart
	}

	if err := s.eventRepository.Update(ctx, req); err != nil {
		return event.Event{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionEventUpdate,
		Entity:   "event",
		EntityID: &req.ID,
	})

	return s.eventRepository.GetByID(ctx, req.ID)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.eventRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionEventDelete,
		Entity:   "event",
		EntityID: &id,
	})
	return nil
}

func (s *EventServiceImpl) ListMonth(ctx context.Context, year int, month time.Month) ([]event.Event, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.eventRepository.ListByRange(ctx, from, to)
}

func (s *EventServiceImpl) ListRange(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	if to.Before(from) {
		return nil, event.ErrEndBeforeStart
	}
	return s.eventRepository.ListByRange(ctx, from, to)
}

func (s *EventServiceImpl) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	return s.eventRepository.CountByCategory(ctx)
}
