package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/event"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/middleware"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/response"
	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CategoryCounts(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

func (h *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req event.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if userID := middleware.UserID(r.Context()); userID != "" {
		req.CreatedBy = &userID
	}

	created, err := h.eventService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Event created", event.ToResponse(created))
}

func (h *EventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req event.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.eventService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, event.ToResponse(updated))
}

func (h *EventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event deleted", nil)
}

// List serves the calendar. With ?year and ?month it returns one month;
// with ?from and ?to an arbitrary range; default is the current month.
func (h *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		events []event.Event
		err    error
	)

	switch {
	case q.Get("from") != "" || q.Get("to") != "":
		from, okFrom := validator.IsValidDate(q.Get("from"))
		to, okTo := validator.IsValidDate(q.Get("to"))
		if !okFrom || !okTo {
			response.BadRequest(w, "from and to must be YYYY-MM-DD", nil)
			return
		}
		events, err = h.eventService.ListRange(r.Context(), from, to)

	default:
		now := time.Now()
		year, month := now.Year(), now.Month()
		if y, convErr := strconv.Atoi(q.Get("year")); convErr == nil {
			year = y
		}
		if m, convErr := strconv.Atoi(q.Get("month")); convErr == nil && m >= 1 && m <= 12 {
			month = time.Month(m)
		}
		events, err = h.eventService.ListMonth(r.Context(), year, month)
	}

	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]event.EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, event.ToResponse(e))
	}
	response.Success(w, items)
}

func (h *EventHandlerImpl) CategoryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.eventService.CategoryCounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, counts)
}
