package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID          string
	Name        string
	Code        *string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity. The date range is inclusive on both ends; TotalDays is
// always the inclusive day count and is computed server-side on creation.
// A request leaves pending exactly once and never reverts.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	TotalDays int

	Reason string

	Status       LeaveRequestStatus
	ApproverID   *string
	DateApproved *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	LeaveTypeName *string
	EmployeeName  *string
	ApproverName  *string
}

// InclusiveDays counts calendar days between start and end, both inclusive.
// start == end covers exactly one day.
func InclusiveDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Covers reports whether the request's inclusive range contains the date.
func (r *LeaveRequest) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(r.StartDate)) && !d.After(truncateToDay(r.EndDate))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OnLeaveRecord is an approved leave projected onto a single report date,
// carrying the display fields the daily view needs.
type OnLeaveRecord struct {
	EmployeeID     string
	EmployeeName   string
	DepartmentName string
	PositionTitle  string
	LeaveTypeName  string
	LeaveRequestID string
}
