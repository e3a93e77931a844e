package audit

import "time"

// LogEntry is one row of the system audit trail. Entries are written
// best-effort after successful mutations and are never part of the mutation's
// own failure path.
type LogEntry struct {
	ID        string
	UserID    *string
	Action    string
	Entity    string
	EntityID  *string
	Details   *string
	IPAddress *string
	CreatedAt time.Time

	// Joined for the viewer
	UserEmail *string
}

// Actions recorded by the services. Kept as constants so the viewer's filter
// dropdown and the writers stay in sync.
const (
	ActionLogin             = "login"
	ActionLogout            = "logout"
	ActionEmployeeCreate    = "employee.create"
	ActionEmployeeUpdate    = "employee.update"
	ActionEmployeeArchive   = "employee.archive"
	ActionEmployeeUnarchive = "employee.unarchive"
	ActionClockIn           = "attendance.clock_in"
	ActionClockOut          = "attendance.clock_out"
	ActionLeaveCreate       = "leave.create"
	ActionLeaveApprove      = "leave.approve"
	ActionLeaveReject       = "leave.reject"
	ActionOpeningCreate     = "recruitment.opening_create"
	ActionOpeningUpdate     = "recruitment.opening_update"
	ActionApplicantCreate   = "recruitment.applicant_create"
	ActionApplicantStatus   = "recruitment.applicant_status"
	ActionApplicantHire     = "recruitment.hire"
	ActionInterviewSchedule = "recruitment.interview_schedule"
	ActionEventCreate       = "event.create"
	ActionEventUpdate       = "event.update"
	ActionEventDelete       = "event.delete"
)

// LoginAttempt records every authentication attempt, successful or not; the
// auth service throttles on recent failures.
type LoginAttempt struct {
	ID          string
	Email       string
	IPAddress   string
	UserAgent   *string
	Success     bool
	AttemptedAt time.Time
}
