package recruitment

import (
	"time"

	"github.com/peopledesk/hris-backend-go/internal/pkg/validator"
)

type CreateJobOpeningRequest struct {
	Title        string  `json:"title"`
	DepartmentID string  `json:"department_id"`
	PositionID   string  `json:"position_id"`
	Description  *string `json:"description"`
}

func (r *CreateJobOpeningRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > 150 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not exceed 150 characters"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "position_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJobOpeningRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (r *UpdateJobOpeningRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not be empty"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(JobOpeningStatusOpen), string(JobOpeningStatusClosed)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be open or closed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateApplicantRequest struct {
	JobOpeningID string  `json:"job_opening_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number"`
	ResumeURL    *string `json:"resume_url"`
}

func (r *CreateApplicantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobOpeningID) {
		errs = append(errs, validator.ValidationError{Field: "job_opening_id", Message: "job_opening_id is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number format is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateApplicantStatusRequest struct {
	ApplicantID string `json:"-"`
	Status      string `json:"status"`
}

func (r *UpdateApplicantStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(ApplicantStatusScreening),
		string(ApplicantStatusInterview),
		string(ApplicantStatusOffered),
		string(ApplicantStatusHired),
		string(ApplicantStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is not a valid applicant status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleInterviewRequest struct {
	ApplicantID   string  `json:"-"`
	InterviewerID string  `json:"interviewer_id"`
	ScheduledAt   string  `json:"scheduled_at"` // RFC3339
	Location      *string `json:"location"`
	Notes         *string `json:"notes"`
}

func (r *ScheduleInterviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InterviewerID) {
		errs = append(errs, validator.ValidationError{Field: "interviewer_id", Message: "interviewer_id is required"})
	}
	if validator.IsEmpty(r.ScheduledAt) {
		errs = append(errs, validator.ValidationError{Field: "scheduled_at", Message: "scheduled_at is required"})
	} else if _, err := time.Parse(time.RFC3339, r.ScheduledAt); err != nil {
		errs = append(errs, validator.ValidationError{Field: "scheduled_at", Message: "scheduled_at must be RFC3339"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HireApplicantRequest carries the employment details needed to promote a
// hired applicant into the employee roster.
type HireApplicantRequest struct {
	ApplicantID  string  `json:"-"`
	DepartmentID string  `json:"department_id"`
	PositionID   string  `json:"position_id"`
	HireDate     string  `json:"hire_date"`
	Gender       string  `json:"gender"`
	BaseSalary   *string `json:"base_salary"`
}

func (r *HireApplicantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "position_id is required"})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date is required"})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Gender, []string{"Male", "Female"}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male or Female"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobOpeningResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	DepartmentID   string  `json:"department_id"`
	PositionID     string  `json:"position_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	PositionTitle  *string `json:"position_title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Status         string  `json:"status"`
	PostedAt       string  `json:"posted_at"`
	ClosedAt       *string `json:"closed_at,omitempty"`
	ApplicantCount *int64  `json:"applicant_count,omitempty"`
}

func ToOpeningResponse(o JobOpening) JobOpeningResponse {
	resp := JobOpeningResponse{
		ID:             o.ID,
		Title:          o.Title,
		DepartmentID:   o.DepartmentID,
		PositionID:     o.PositionID,
		DepartmentName: o.DepartmentName,
		PositionTitle:  o.PositionTitle,
		Description:    o.Description,
		Status:         string(o.Status),
		PostedAt:       o.PostedAt.Format("2006-01-02"),
		ApplicantCount: o.ApplicantCount,
	}
	if o.ClosedAt != nil {
		closed := o.ClosedAt.Format("2006-01-02")
		resp.ClosedAt = &closed
	}
	return resp
}

type ApplicantResponse struct {
	ID           string  `json:"id"`
	JobOpeningID string  `json:"job_opening_id"`
	JobTitle     *string `json:"job_title,omitempty"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	ResumeURL    *string `json:"resume_url,omitempty"`
	Status       string  `json:"status"`
	AppliedAt    string  `json:"applied_at"`
	EmployeeID   *string `json:"employee_id,omitempty"`
}

func ToApplicantResponse(a Applicant) ApplicantResponse {
	return ApplicantResponse{
		ID:           a.ID,
		JobOpeningID: a.JobOpeningID,
		JobTitle:     a.JobTitle,
		FullName:     a.FullName(),
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		ResumeURL:    a.ResumeURL,
		Status:       string(a.Status),
		AppliedAt:    a.AppliedAt.Format("2006-01-02"),
		EmployeeID:   a.EmployeeID,
	}
}

type InterviewResponse struct {
	ID              string  `json:"id"`
	ApplicantID     string  `json:"applicant_id"`
	ApplicantName   *string `json:"applicant_name,omitempty"`
	InterviewerID   string  `json:"interviewer_id"`
	InterviewerName *string `json:"interviewer_name,omitempty"`
	ScheduledAt     string  `json:"scheduled_at"`
	Location        *string `json:"location,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func ToInterviewResponse(i Interview) InterviewResponse {
	return InterviewResponse{
		ID:              i.ID,
		ApplicantID:     i.ApplicantID,
		ApplicantName:   i.ApplicantName,
		InterviewerID:   i.InterviewerID,
		InterviewerName: i.InterviewerName,
		ScheduledAt:     i.ScheduledAt.Format(time.RFC3339),
		Location:        i.Location,
		Notes:           i.Notes,
	}
}

// ApplicantListFilter narrows the applicant list.
type ApplicantListFilter struct {
	JobOpeningID string
	Status       string
	Search       string // matches name or email
	Page         int
	Limit        int
}

func (f *ApplicantListFilter) Normalize() {
	if !validator.IsInSlice(f.Status, []string{
		string(ApplicantStatusApplied),
		string(ApplicantStatusScreening),
		string(ApplicantStatusInterview),
		string(ApplicantStatusOffered),
		string(ApplicantStatusHired),
		string(ApplicantStatusRejected),
	}) {
		f.Status = ""
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 25
	}
}
