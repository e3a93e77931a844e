package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	"github.com/peopledesk/hris-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveTypeRepository    leave.LeaveTypeRepository
	leaveRequestRepository leave.LeaveRequestRepository
	employeeRepository     employee.EmployeeRepository
	auditRecorder          audit.Recorder
	now                    func() time.Time
}

func NewLeaveService(
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	auditRecorder audit.Recorder,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveTypeRepository:    leaveTypeRepository,
		leaveRequestRepository: leaveRequestRepository,
		employeeRepository:     employeeRepository,
		auditRecorder:          auditRecorder,
		now:                    time.Now,
	}
}

func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !emp.IsActive() {
		return leave.LeaveRequest{}, employee.ErrEmployeeAlreadyInactive
	}

	leaveType, err := s.leaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveRequest{}, leave.ErrLeaveTypeInactive
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("invalid end_date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrEndBeforeStart
	}

	overlapping, err := s.leaveRequestRepository.HasOverlapping(ctx, req.EmployeeID, startDate, endDate)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if overlapping {
		return leave.LeaveRequest{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   leave.InclusiveDays(startDate, endDate),
		Reason:      req.Reason,
		Status:      leave.LeaveRequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionLeaveCreate,
		Entity:   "leave_request",
		EntityID: &created.ID,
	})

	return s.leaveRequestRepository.GetByID(ctx, created.ID)
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID string, approverID string) (leave.LeaveRequest, error) {
	return s.decide(ctx, requestID, approverID, leave.LeaveRequestStatusApproved, audit.ActionLeaveApprove, nil)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, requestID string, approverID string, reason string) (leave.LeaveRequest, error) {
	// The rejection reason lives on the audit entry, next to who rejected it.
	var details *string
	if reason != "" {
		details = &reason
	}
	return s.decide(ctx, requestID, approverID, leave.LeaveRequestStatusRejected, audit.ActionLeaveReject, details)
}

// decide applies a decision exactly once: the conditional transition fails
// when the request already left pending.
func (s *LeaveServiceImpl) decide(ctx context.Context, requestID string, approverID string, status leave.LeaveRequestStatus, action string, details *string) (leave.LeaveRequest, error) {
	if _, err := s.leaveRequestRepository.GetByID(ctx, requestID); err != nil {
		return leave.LeaveRequest{}, err
	}

	applied, err := s.leaveRequestRepository.TransitionStatus(ctx, requestID, status, approverID, s.now())
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !applied {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   action,
		Entity:   "leave_request",
		EntityID: &requestID,
		Details:  details,
	})

	return s.leaveRequestRepository.GetByID(ctx, requestID)
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.leaveRequestRepository.GetByID(ctx, id)
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	filter.Normalize()
	return s.leaveRequestRepository.List(ctx, filter)
}

func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return s.leaveTypeRepository.List(ctx)
}

func (s *LeaveServiceImpl) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}
	return s.leaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		IsActive:    true,
	})
}
