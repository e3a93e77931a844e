package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hris-backend-go/internal/domain/user"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/middleware"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/response"
	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn stamps time-in for the authenticated user's own employee record.
// The employee id comes from the token, never the body, so nobody can clock
// in on someone else's behalf.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r.Context())
	if employeeID == nil {
		response.Forbidden(w, "no employee record linked to this account")
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), attendance.ClockInRequest{EmployeeID: *employeeID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", attendance.ToResponse(record, time.Now()))
}

// ClockOut closes the caller's open session. A body with employee_id closes
// someone else's session instead, which needs the attendance manage permission.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EmployeeID *string `json:"employee_id"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body) // body is optional

	target := middleware.EmployeeID(r.Context())
	if body.EmployeeID != nil && (target == nil || *body.EmployeeID != *target) {
		decision := user.Decide(user.Role(middleware.Role(r.Context())), user.PermissionAttendanceManage)
		if !decision.Allowed {
			response.Forbidden(w, decision.Reason)
			return
		}
		target = body.EmployeeID
	}
	if target == nil {
		response.Forbidden(w, "no employee record linked to this account")
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), attendance.ClockOutRequest{EmployeeID: *target})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToResponse(record, time.Now()))
}

func (h *AttendanceHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := attendance.DailyReportQuery{
		Filter: attendance.ReportFilter{
			Position:   q.Get("position"),
			Department: q.Get("department"),
		},
	}
	if dateStr := q.Get("date"); dateStr != "" {
		date, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		query.Date = date
	}

	report, err := h.attendanceService.DailyReport(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Default to the current month when the range is omitted.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if fromStr := q.Get("from"); fromStr != "" {
		parsed, ok := validator.IsValidDate(fromStr)
		if !ok {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return
		}
		from = parsed
	}
	if toStr := q.Get("to"); toStr != "" {
		parsed, ok := validator.IsValidDate(toStr)
		if !ok {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return
		}
		to = parsed
	}

	records, err := h.attendanceService.History(r.Context(), chi.URLParam(r, "employeeID"), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, attendance.ToResponse(rec, now))
	}
	response.Success(w, items)
}
