package response

import (
	"errors"
	"net/http"

	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hris-backend-go/internal/domain/auth"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	"github.com/peopledesk/hris-backend-go/internal/domain/event"
	"github.com/peopledesk/hris-backend-go/internal/domain/leave"
	"github.com/peopledesk/hris-backend-go/internal/domain/master/department"
	"github.com/peopledesk/hris-backend-go/internal/domain/master/position"
	"github.com/peopledesk/hris-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hris-backend-go/internal/domain/user"
	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTooManyAttempts):
		TooManyRequests(w, err.Error())
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		NotFound(w, err.Error())
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, err.Error())

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeAlreadyActive),
		errors.Is(err, employee.ErrEmployeeAlreadyInactive),
		errors.Is(err, employee.ErrCannotArchiveSelf):
		Conflict(w, err.Error())

	// Master data
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrEmployeeInactive):
		Forbidden(w, err.Error())

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed),
		errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrLeaveTypeInactive),
		errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, err.Error(), nil)

	// Recruitment
	case errors.Is(err, recruitment.ErrJobOpeningNotFound):
		NotFound(w, "Job opening not found")
	case errors.Is(err, recruitment.ErrApplicantNotFound):
		NotFound(w, "Applicant not found")
	case errors.Is(err, recruitment.ErrInterviewNotFound):
		NotFound(w, "Interview not found")
	case errors.Is(err, recruitment.ErrInterviewerNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, recruitment.ErrInvalidTransition),
		errors.Is(err, recruitment.ErrApplicantNotHireable),
		errors.Is(err, recruitment.ErrApplicantAlreadyHired),
		errors.Is(err, recruitment.ErrApplicantEmailExists),
		errors.Is(err, recruitment.ErrJobOpeningClosed):
		Conflict(w, err.Error())
	case errors.Is(err, recruitment.ErrInterviewInPast):
		BadRequest(w, err.Error(), nil)

	// Events
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrEndBeforeStart):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
