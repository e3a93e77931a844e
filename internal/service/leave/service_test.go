package leave

import (
	"context"
	"testing"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	domain "github.com/peopledesk/hris-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveTypeRepo struct {
	types map[string]domain.LeaveType
}

func (f *fakeLeaveTypeRepo) Create(ctx context.Context, lt domain.LeaveType) (domain.LeaveType, error) {
	lt.ID = "lt-new"
	return lt, nil
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (domain.LeaveType, error) {
	if lt, ok := f.types[id]; ok {
		return lt, nil
	}
	return domain.LeaveType{}, domain.ErrLeaveTypeNotFound
}

func (f *fakeLeaveTypeRepo) List(ctx context.Context) ([]domain.LeaveType, error) { return nil, nil }

type fakeLeaveRequestRepo struct {
	requests    map[string]*domain.LeaveRequest
	overlapping bool
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, r domain.LeaveRequest) (domain.LeaveRequest, error) {
	r.ID = "lr-new"
	if f.requests == nil {
		f.requests = map[string]*domain.LeaveRequest{}
	}
	f.requests[r.ID] = &r
	return r, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (domain.LeaveRequest, error) {
	if r, ok := f.requests[id]; ok {
		return *r, nil
	}
	return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepo) List(ctx context.Context, filter domain.ListFilter) ([]domain.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRequestRepo) TransitionStatus(ctx context.Context, id string, status domain.LeaveRequestStatus, approverID string, dateApproved time.Time) (bool, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != domain.LeaveRequestStatusPending {
		return false, nil
	}
	r.Status = status
	r.ApproverID = &approverID
	r.DateApproved = &dateApproved
	return true, nil
}

func (f *fakeLeaveRequestRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.overlapping, nil
}

func (f *fakeLeaveRequestRepo) ListApprovedOnDate(ctx context.Context, date time.Time, filter attendance.ReportFilter) ([]domain.OnLeaveRecord, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) SetEmploymentStatus(ctx context.Context, id string, status employee.EmploymentStatus) error {
	return nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeEmployeeRepo) EmailExists(ctx context.Context, email string, excludeID *string) (bool, error) {
	return false, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, entry audit.LogEntry) {}

type capturingRecorder struct {
	entries []audit.LogEntry
}

func (c *capturingRecorder) Record(ctx context.Context, entry audit.LogEntry) {
	c.entries = append(c.entries, entry)
}

func newTestService(reqRepo *fakeLeaveRequestRepo) *LeaveServiceImpl {
	typeRepo := &fakeLeaveTypeRepo{types: map[string]domain.LeaveType{
		"lt-1": {ID: "lt-1", Name: "Annual", IsActive: true},
		"lt-2": {ID: "lt-2", Name: "Retired", IsActive: false},
	}}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmploymentStatus: employee.EmploymentStatusActive},
	}}
	svc := NewLeaveService(typeRepo, reqRepo, empRepo, nopRecorder{}).(*LeaveServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateRequest(t *testing.T) {
	t.Run("computes inclusive day count", func(t *testing.T) {
		svc := newTestService(&fakeLeaveRequestRepo{})

		created, err := svc.CreateRequest(context.Background(), domain.CreateLeaveRequestRequest{
			EmployeeID:  "emp-1",
			LeaveTypeID: "lt-1",
			StartDate:   "2025-03-17",
			EndDate:     "2025-03-21",
			Reason:      "family",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, created.TotalDays)
		assert.Equal(t, domain.LeaveRequestStatusPending, created.Status)
	})

	t.Run("rejects overlapping request", func(t *testing.T) {
		svc := newTestService(&fakeLeaveRequestRepo{overlapping: true})

		_, err := svc.CreateRequest(context.Background(), domain.CreateLeaveRequestRequest{
			EmployeeID:  "emp-1",
			LeaveTypeID: "lt-1",
			StartDate:   "2025-03-17",
			EndDate:     "2025-03-18",
		})
		assert.ErrorIs(t, err, domain.ErrOverlappingLeave)
	})

	t.Run("rejects inactive leave type", func(t *testing.T) {
		svc := newTestService(&fakeLeaveRequestRepo{})

		_, err := svc.CreateRequest(context.Background(), domain.CreateLeaveRequestRequest{
			EmployeeID:  "emp-1",
			LeaveTypeID: "lt-2",
			StartDate:   "2025-03-17",
			EndDate:     "2025-03-18",
		})
		assert.ErrorIs(t, err, domain.ErrLeaveTypeInactive)
	})
}

func TestApprove(t *testing.T) {
	t.Run("stamps approver and date exactly once", func(t *testing.T) {
		reqRepo := &fakeLeaveRequestRepo{requests: map[string]*domain.LeaveRequest{
			"lr-1": {ID: "lr-1", Status: domain.LeaveRequestStatusPending},
		}}
		svc := newTestService(reqRepo)

		approved, err := svc.Approve(context.Background(), "lr-1", "emp-9")
		require.NoError(t, err)
		assert.Equal(t, domain.LeaveRequestStatusApproved, approved.Status)
		require.NotNil(t, approved.ApproverID)
		assert.Equal(t, "emp-9", *approved.ApproverID)
		require.NotNil(t, approved.DateApproved)

		// A second decision, approve or reject, must not re-stamp.
		_, err = svc.Approve(context.Background(), "lr-1", "emp-8")
		assert.ErrorIs(t, err, domain.ErrLeaveRequestAlreadyProcessed)

		_, err = svc.Reject(context.Background(), "lr-1", "emp-8", "late")
		assert.ErrorIs(t, err, domain.ErrLeaveRequestAlreadyProcessed)

		final, err := svc.Get(context.Background(), "lr-1")
		require.NoError(t, err)
		assert.Equal(t, "emp-9", *final.ApproverID)
	})

	t.Run("unknown request", func(t *testing.T) {
		svc := newTestService(&fakeLeaveRequestRepo{})

		_, err := svc.Approve(context.Background(), "missing", "emp-9")
		assert.ErrorIs(t, err, domain.ErrLeaveRequestNotFound)
	})
}

func TestReject(t *testing.T) {
	t.Run("records the reason in the audit trail", func(t *testing.T) {
		reqRepo := &fakeLeaveRequestRepo{requests: map[string]*domain.LeaveRequest{
			"lr-1": {ID: "lr-1", Status: domain.LeaveRequestStatusPending},
		}}
		svc := newTestService(reqRepo)
		recorder := &capturingRecorder{}
		svc.auditRecorder = recorder

		rejected, err := svc.Reject(context.Background(), "lr-1", "emp-9", "insufficient leave balance")
		require.NoError(t, err)
		assert.Equal(t, domain.LeaveRequestStatusRejected, rejected.Status)

		require.Len(t, recorder.entries, 1)
		entry := recorder.entries[0]
		assert.Equal(t, audit.ActionLeaveReject, entry.Action)
		require.NotNil(t, entry.Details)
		assert.Equal(t, "insufficient leave balance", *entry.Details)
	})

	t.Run("empty reason leaves details unset", func(t *testing.T) {
		reqRepo := &fakeLeaveRequestRepo{requests: map[string]*domain.LeaveRequest{
			"lr-1": {ID: "lr-1", Status: domain.LeaveRequestStatusPending},
		}}
		svc := newTestService(reqRepo)
		recorder := &capturingRecorder{}
		svc.auditRecorder = recorder

		_, err := svc.Reject(context.Background(), "lr-1", "emp-9", "")
		require.NoError(t, err)

		require.Len(t, recorder.entries, 1)
		assert.Nil(t, recorder.entries[0].Details)
	})
}
