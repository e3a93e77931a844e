package recruitment

import "time"

type JobOpeningStatus string

const (
	JobOpeningStatusOpen   JobOpeningStatus = "open"
	JobOpeningStatusClosed JobOpeningStatus = "closed"
)

type JobOpening struct {
	ID           string
	Title        string
	DepartmentID string
	PositionID   string
	Description  *string
	Status       JobOpeningStatus
	PostedAt     time.Time
	ClosedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	DepartmentName *string
	PositionTitle  *string
	ApplicantCount *int64
}

type ApplicantStatus string

const (
	ApplicantStatusApplied   ApplicantStatus = "applied"
	ApplicantStatusScreening ApplicantStatus = "screening"
	ApplicantStatusInterview ApplicantStatus = "interview"
	ApplicantStatusOffered   ApplicantStatus = "offered"
	ApplicantStatusHired     ApplicantStatus = "hired"
	ApplicantStatusRejected  ApplicantStatus = "rejected"
)

// applicantFlow is the forward pipeline; rejection is allowed from any
// non-terminal state and hired/rejected are terminal.
var applicantFlow = map[ApplicantStatus]ApplicantStatus{
	ApplicantStatusApplied:   ApplicantStatusScreening,
	ApplicantStatusScreening: ApplicantStatusInterview,
	ApplicantStatusInterview: ApplicantStatusOffered,
	ApplicantStatusOffered:   ApplicantStatusHired,
}

// CanTransition reports whether an applicant may move from one status to the
// next requested one.
func CanTransition(from, to ApplicantStatus) bool {
	if from == ApplicantStatusHired || from == ApplicantStatusRejected {
		return false
	}
	if to == ApplicantStatusRejected {
		return true
	}
	return applicantFlow[from] == to
}

// IsTerminal reports whether no further transitions are possible.
func (s ApplicantStatus) IsTerminal() bool {
	return s == ApplicantStatusHired || s == ApplicantStatusRejected
}

type Applicant struct {
	ID           string
	JobOpeningID string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	ResumeURL    *string
	Status       ApplicantStatus
	AppliedAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	JobTitle   *string
	EmployeeID *string // set once hired
}

func (a *Applicant) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Interview struct {
	ID            string
	ApplicantID   string
	InterviewerID string
	ScheduledAt   time.Time
	Location      *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	ApplicantName   *string
	InterviewerName *string
}
