package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peopledesk/hris-backend-go/internal/domain/leave"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveService struct {
	createdWith *leave.CreateLeaveRequestRequest
}

func (s *stubLeaveService) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	s.createdWith = &req
	return leave.LeaveRequest{ID: "lr-new", EmployeeID: req.EmployeeID, Status: leave.LeaveRequestStatusPending}, nil
}

func (s *stubLeaveService) Approve(ctx context.Context, requestID string, approverID string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}

func (s *stubLeaveService) Reject(ctx context.Context, requestID string, approverID string, reason string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}

func (s *stubLeaveService) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}

func (s *stubLeaveService) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (s *stubLeaveService) ListTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return nil, nil
}

func (s *stubLeaveService) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	return leave.LeaveType{}, nil
}

func newLeaveRequestHTTP(body string, employeeID *string, role string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/leave-requests", bytes.NewBufferString(body))
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUserID, "user-1")
	if employeeID != nil {
		ctx = context.WithValue(ctx, middleware.ContextKeyEmployeeID, *employeeID)
	}
	if role != "" {
		ctx = context.WithValue(ctx, middleware.ContextKeyRole, role)
	}
	return r.WithContext(ctx)
}

func TestLeaveCreateRequestIdentity(t *testing.T) {
	body := `{"leave_type_id":"lt-1","start_date":"2025-03-17","end_date":"2025-03-18"}`
	self := "emp-1"

	t.Run("defaults to the caller's employee record", func(t *testing.T) {
		svc := &stubLeaveService{}
		h := NewLeaveHandler(svc)

		w := httptest.NewRecorder()
		h.CreateRequest(w, newLeaveRequestHTTP(body, &self, "hr_staff"))

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, svc.createdWith)
		assert.Equal(t, "emp-1", svc.createdWith.EmployeeID)
	})

	t.Run("rejects accounts with no employee record", func(t *testing.T) {
		svc := &stubLeaveService{}
		h := NewLeaveHandler(svc)

		w := httptest.NewRecorder()
		h.CreateRequest(w, newLeaveRequestHTTP(body, nil, "hr_staff"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Nil(t, svc.createdWith)
	})

	t.Run("filing for someone else needs leave manage", func(t *testing.T) {
		onBehalf := `{"employee_id":"emp-2","leave_type_id":"lt-1","start_date":"2025-03-17","end_date":"2025-03-18"}`

		svc := &stubLeaveService{}
		h := NewLeaveHandler(svc)

		w := httptest.NewRecorder()
		h.CreateRequest(w, newLeaveRequestHTTP(onBehalf, &self, "hr_staff"))

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, svc.createdWith)
		assert.Equal(t, "emp-2", svc.createdWith.EmployeeID)
	})

	t.Run("unknown role cannot file for someone else", func(t *testing.T) {
		onBehalf := `{"employee_id":"emp-2","leave_type_id":"lt-1","start_date":"2025-03-17","end_date":"2025-03-18"}`

		svc := &stubLeaveService{}
		h := NewLeaveHandler(svc)

		w := httptest.NewRecorder()
		h.CreateRequest(w, newLeaveRequestHTTP(onBehalf, &self, ""))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Nil(t, svc.createdWith)
	})

	t.Run("own id in the body stays self-service", func(t *testing.T) {
		selfBody := `{"employee_id":"emp-1","leave_type_id":"lt-1","start_date":"2025-03-17","end_date":"2025-03-18"}`

		svc := &stubLeaveService{}
		h := NewLeaveHandler(svc)

		w := httptest.NewRecorder()
		h.CreateRequest(w, newLeaveRequestHTTP(selfBody, &self, ""))

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, svc.createdWith)
		assert.Equal(t, "emp-1", svc.createdWith.EmployeeID)
	})
}
