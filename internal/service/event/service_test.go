package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	domain "github.com/peopledesk/hris-backend-go/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events    map[string]domain.Event
	lastFrom  time.Time
	lastTo    time.Time
	seq       int
	lastPatch *domain.UpdateEventRequest
}

func (f *fakeEventRepo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	f.seq++
	e.ID = fmt.Sprintf("evt-%d", f.seq)
	if f.events == nil {
		f.events = map[string]domain.Event{}
	}
	f.events[e.ID] = e
	return e, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (domain.Event, error) {
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return domain.Event{}, domain.ErrEventNotFound
}

func (f *fakeEventRepo) ListByRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	f.lastFrom, f.lastTo = from, to
	var out []domain.Event
	for _, e := range f.events {
		if !e.StartDate.After(to) && !e.EndDate.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, req domain.UpdateEventRequest) error {
	f.lastPatch = &req
	e, ok := f.events[req.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.StartDate != nil {
		e.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		e.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	f.events[req.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, e := range f.events {
		counts[e.Category]++
	}
	return counts, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, entry audit.LogEntry) {}

func TestCreateEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, nopRecorder{})

	t.Run("valid event is stored", func(t *testing.T) {
		created, err := svc.Create(context.Background(), domain.CreateEventRequest{
			Title:     "Spring career fair",
			StartDate: "2025-04-01",
			EndDate:   "2025-04-02",
			Category:  "career_fair",
		})
		require.NoError(t, err)
		assert.Equal(t, "Spring career fair", created.Title)
		assert.Equal(t, "2025-04-01", created.StartDate.Format("2006-01-02"))
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), domain.CreateEventRequest{
			Title:     "Backwards",
			StartDate: "2025-04-05",
			EndDate:   "2025-04-01",
			Category:  "meeting",
		})
		assert.Error(t, err)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), domain.CreateEventRequest{
			Title:     "Party",
			StartDate: "2025-04-01",
			EndDate:   "2025-04-01",
			Category:  "party",
		})
		assert.Error(t, err)
	})
}

func TestUpdateEvent(t *testing.T) {
	newRepoWith := func(id string, start, end string) *fakeEventRepo {
		s, _ := time.Parse("2006-01-02", start)
		e, _ := time.Parse("2006-01-02", end)
		return &fakeEventRepo{events: map[string]domain.Event{
			id: {ID: id, Title: "Interview day", StartDate: s, EndDate: e, Category: "interview"},
		}}
	}

	t.Run("moving only the end keeps the range ordered", func(t *testing.T) {
		repo := newRepoWith("evt-1", "2025-04-10", "2025-04-12")
		svc := NewEventService(repo, nopRecorder{})

		badEnd := "2025-04-05"
		_, err := svc.Update(context.Background(), domain.UpdateEventRequest{ID: "evt-1", EndDate: &badEnd})
		assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
	})

	t.Run("valid patch is applied", func(t *testing.T) {
		repo := newRepoWith("evt-1", "2025-04-10", "2025-04-12")
		svc := NewEventService(repo, nopRecorder{})

		title := "Interview day (rescheduled)"
		newEnd := "2025-04-15"
		updated, err := svc.Update(context.Background(), domain.UpdateEventRequest{ID: "evt-1", Title: &title, EndDate: &newEnd})
		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)
		assert.Equal(t, newEnd, updated.EndDate.Format("2006-01-02"))
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{}, nopRecorder{})

		title := "x"
		_, err := svc.Update(context.Background(), domain.UpdateEventRequest{ID: "missing", Title: &title})
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

func TestListMonth(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, nopRecorder{})

	_, err := svc.ListMonth(context.Background(), 2025, time.February)
	require.NoError(t, err)

	assert.Equal(t, "2025-02-01", repo.lastFrom.Format("2006-01-02"))
	assert.Equal(t, "2025-02-28", repo.lastTo.Format("2006-01-02"))
}

func TestListRange(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, nopRecorder{})

	from := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.ListRange(context.Background(), from, to)
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
}
