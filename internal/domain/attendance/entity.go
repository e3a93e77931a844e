package attendance

import (
	"fmt"
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     time.Time
	TimeOut    *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName   *string
	DepartmentName *string
	PositionTitle  *string
}

// DayStatus is the derived per-employee classification for a single calendar
// day. Every active employee resolves to exactly one of these.
type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusOnLeave DayStatus = "on_leave"
	DayStatusAbsent  DayStatus = "absent"
)

// DailyEntry is one row of the reconciled daily view: either an attendance
// record or an approved leave covering the day.
type DailyEntry struct {
	EmployeeID     string     `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	DepartmentName string     `json:"department_name"`
	PositionTitle  string     `json:"position_title"`
	Status         DayStatus  `json:"status"`
	TimeIn         *time.Time `json:"time_in,omitempty"`
	TimeOut        *time.Time `json:"time_out,omitempty"`
	WorkDuration   string     `json:"work_duration,omitempty"`
	LeaveTypeName  *string    `json:"leave_type_name,omitempty"`
	LeaveRequestID *string    `json:"leave_request_id,omitempty"`
}

// AbsentEmployee is a row of the absent drill-down roster.
type AbsentEmployee struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	DepartmentName string `json:"department_name"`
	PositionTitle  string `json:"position_title"`
}

// DailyReport is the reconciled view for one date. The counts are derived
// from the rosters below them, so present+on_leave+absent always sums to
// the active headcount the rosters were computed against.
type DailyReport struct {
	Date            time.Time        `json:"date"`
	Entries         []DailyEntry     `json:"entries"`
	AbsentRoster    []AbsentEmployee `json:"absent_roster"`
	PresentCount    int              `json:"present_count"`
	OnLeaveCount    int              `json:"on_leave_count"`
	AbsentCount     int              `json:"absent_count"`
	ActiveEmployees int              `json:"active_employees"`
}

// FormatWorkDuration renders the elapsed working time for display: seconds
// under a minute, whole minutes under an hour, otherwise hours and minutes.
// Open sessions (no time out) are measured against now; the client keeps
// re-deriving those every second.
func FormatWorkDuration(timeIn time.Time, timeOut *time.Time, now time.Time) string {
	end := now
	if timeOut != nil {
		end = *timeOut
	}

	elapsed := end.Sub(timeIn)
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return fmt.Sprintf("%ds", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm", int(elapsed.Minutes()))
	default:
		hours := int(elapsed.Hours())
		minutes := int(elapsed.Minutes()) % 60
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
