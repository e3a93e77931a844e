package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/leave"
	"github.com/peopledesk/hris-backend-go/internal/domain/user"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/middleware"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Requests default to the caller's own employee record. A body with an
	// employee_id belonging to someone else needs the leave manage permission.
	self := middleware.EmployeeID(r.Context())
	switch {
	case req.EmployeeID == "":
		if self == nil {
			response.Forbidden(w, "no employee record linked to this account")
			return
		}
		req.EmployeeID = *self
	case self == nil || req.EmployeeID != *self:
		decision := user.Decide(user.Role(middleware.Role(r.Context())), user.PermissionLeaveManage)
		if !decision.Allowed {
			response.Forbidden(w, decision.Reason)
			return
		}
	}

	created, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", leave.ToResponse(created))
}

func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.leaveService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToResponse(found))
}

func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := leave.ListFilter{
		Status:     q.Get("status"),
		EmployeeID: q.Get("employee_id"),
		Page:       page,
		Limit:      limit,
	}
	filter.Normalize()

	requests, total, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, leave.ToResponse(req))
	}
	response.SuccessWithMeta(w, items, response.NewMeta(filter.Page, filter.Limit, total))
}

// approverID resolves the acting employee from the token. Decisions are
// stamped with an employee id, so accounts without one cannot approve.
func approverID(r *http.Request, w http.ResponseWriter) (string, bool) {
	id := middleware.EmployeeID(r.Context())
	if id == nil {
		response.Forbidden(w, "no employee record linked to this account")
		return "", false
	}
	return *id, true
}

func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approver, ok := approverID(r, w)
	if !ok {
		return
	}

	approved, err := h.leaveService.Approve(r.Context(), chi.URLParam(r, "id"), approver)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", leave.ToResponse(approved))
}

func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approver, ok := approverID(r, w)
	if !ok {
		return
	}

	var req leave.RejectLeaveRequestRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // reason is optional

	rejected, err := h.leaveService.Reject(r.Context(), chi.URLParam(r, "id"), approver, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", leave.ToResponse(rejected))
}

func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		items = append(items, leave.ToTypeResponse(t))
	}
	response.Success(w, items)
}

func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave type created", leave.ToTypeResponse(created))
}
