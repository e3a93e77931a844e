package recruitment

import "errors"

var (
	ErrJobOpeningNotFound    = errors.New("job opening not found")
	ErrJobOpeningClosed      = errors.New("job opening is closed")
	ErrApplicantNotFound     = errors.New("applicant not found")
	ErrInvalidTransition     = errors.New("invalid applicant status transition")
	ErrApplicantNotHireable  = errors.New("only offered applicants can be hired")
	ErrInterviewNotFound     = errors.New("interview not found")
	ErrInterviewerNotFound   = errors.New("interviewer employee not found")
	ErrApplicantEmailExists  = errors.New("applicant already applied to this opening")
	ErrInterviewInPast       = errors.New("interview cannot be scheduled in the past")
	ErrApplicantAlreadyHired = errors.New("applicant is already hired")
)
