package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. Clock-in is
// an idempotent upsert against the unique (employee_id, date) constraint, so
// concurrent submissions can never create duplicate day rows.
type AttendanceRepository interface {
	// UpsertClockIn inserts the day's row if none exists. Returns the row and
	// whether it was inserted by this call (false means someone already
	// clocked the employee in).
	UpsertClockIn(ctx context.Context, employeeID string, date time.Time, timeIn time.Time) (Attendance, bool, error)

	// GetByEmployeeAndDate returns the day's row, or nil when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetTimeOut closes an open session. Conditional on time_out IS NULL.
	SetTimeOut(ctx context.Context, id string, timeOut time.Time) error

	// ListOnDate returns the day's attendance rows joined to employee,
	// department and position, newest clock-in first.
	ListOnDate(ctx context.Context, date time.Time, filter ReportFilter) ([]Attendance, error)

	// ListAbsentOnDate returns active employees with neither an attendance
	// row nor an approved leave covering the date. This single exclusion
	// query is the source of truth for the absent count.
	ListAbsentOnDate(ctx context.Context, date time.Time, filter ReportFilter) ([]AbsentEmployee, error)

	// ListForEmployee returns an employee's rows inside an inclusive range.
	ListForEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// RemoveDuplicateDays deletes extra rows sharing (employee_id, date),
	// keeping the lowest id. Idempotent; defends rows that predate the
	// unique constraint.
	RemoveDuplicateDays(ctx context.Context) (int64, error)

	// CloseStaleSessions stamps time_out on sessions still open after the
	// given number of hours. Returns how many were closed.
	CloseStaleSessions(ctx context.Context, olderThan time.Duration) (int64, error)
}

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (Attendance, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (Attendance, error)
	DailyReport(ctx context.Context, query DailyReportQuery) (DailyReport, error)
	History(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
