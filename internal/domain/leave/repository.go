package leave

import (
	"context"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, int64, error)

	// TransitionStatus moves a pending request to approved or rejected.
	// Returns false when the request was not pending, so a second approval
	// can never re-stamp an already processed request.
	TransitionStatus(ctx context.Context, id string, status LeaveRequestStatus, approverID string, dateApproved time.Time) (bool, error)

	// HasOverlapping reports whether the employee already holds a pending or
	// approved request intersecting the inclusive range.
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// ListApprovedOnDate returns active employees with an approved request
	// covering the date who have no attendance row for it, filtered the same
	// way as the attendance set.
	ListApprovedOnDate(ctx context.Context, date time.Time, filter attendance.ReportFilter) ([]OnLeaveRecord, error)
}

type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	Approve(ctx context.Context, requestID string, approverID string) (LeaveRequest, error)
	Reject(ctx context.Context, requestID string, approverID string, reason string) (LeaveRequest, error)
	Get(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, int64, error)
	ListTypes(ctx context.Context) ([]LeaveType, error)
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
}
