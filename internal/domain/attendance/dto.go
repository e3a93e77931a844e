package attendance

import (
	"time"

	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportFilter narrows the daily report to employees whose position or
// department name contains the given substring, case-insensitively. Empty
// strings match everyone.
type ReportFilter struct {
	Position   string
	Department string
}

// DailyReportQuery selects the date and filters for one reconciliation run.
// Date defaults to today when the query string omits it.
type DailyReportQuery struct {
	Date   time.Time
	Filter ReportFilter
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	PositionTitle  *string `json:"position_title,omitempty"`
	Date           string  `json:"date"`
	TimeIn         string  `json:"time_in"`
	TimeOut        *string `json:"time_out,omitempty"`
	WorkDuration   string  `json:"work_duration"`
}

func ToResponse(a Attendance, now time.Time) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		DepartmentName: a.DepartmentName,
		PositionTitle:  a.PositionTitle,
		Date:           a.Date.Format("2006-01-02"),
		TimeIn:         a.TimeIn.Format(time.RFC3339),
		WorkDuration:   FormatWorkDuration(a.TimeIn, a.TimeOut, now),
	}
	if a.TimeOut != nil {
		out := a.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &out
	}
	return resp
}
