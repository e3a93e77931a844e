package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/response"
	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &AuditHandlerImpl{auditService: auditService}
}

func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := audit.ListFilter{
		UserID: q.Get("user_id"),
		Action: q.Get("action"),
		Entity: q.Get("entity"),
		Page:   page,
		Limit:  limit,
	}
	if fromStr := q.Get("from"); fromStr != "" {
		from, ok := validator.IsValidDate(fromStr)
		if !ok {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return
		}
		filter.From = &from
	}
	if toStr := q.Get("to"); toStr != "" {
		to, ok := validator.IsValidDate(toStr)
		if !ok {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return
		}
		// Inclusive day bound
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &end
	}
	filter.Normalize()

	entries, total, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]audit.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, audit.ToResponse(e))
	}
	response.SuccessWithMeta(w, items, response.NewMeta(filter.Page, filter.Limit, total))
}
