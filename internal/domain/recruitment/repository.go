package recruitment

import (
	"context"

	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
)

type JobOpeningRepository interface {
	Create(ctx context.Context, opening JobOpening) (JobOpening, error)
	GetByID(ctx context.Context, id string) (JobOpening, error)
	List(ctx context.Context, status string) ([]JobOpening, error)
	Update(ctx context.Context, req UpdateJobOpeningRequest) error
	Delete(ctx context.Context, id string) error
}

type ApplicantRepository interface {
	Create(ctx context.Context, applicant Applicant) (Applicant, error)
	GetByID(ctx context.Context, id string) (Applicant, error)
	List(ctx context.Context, filter ApplicantListFilter) ([]Applicant, int64, error)
	ExistsByOpeningAndEmail(ctx context.Context, jobOpeningID string, email string) (bool, error)

	// UpdateStatus is conditional on the current status, so two concurrent
	// updates cannot both apply.
	UpdateStatus(ctx context.Context, id string, from, to ApplicantStatus) (bool, error)

	// MarkHired stamps the employee created from this applicant. Runs inside
	// the hire transaction.
	MarkHired(ctx context.Context, id string, employeeID string) error
}

type InterviewRepository interface {
	Create(ctx context.Context, interview Interview) (Interview, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Interview, error)
	Delete(ctx context.Context, id string) error
}

type RecruitmentService interface {
	CreateOpening(ctx context.Context, req CreateJobOpeningRequest) (JobOpening, error)
	UpdateOpening(ctx context.Context, req UpdateJobOpeningRequest) (JobOpening, error)
	ListOpenings(ctx context.Context, status string) ([]JobOpening, error)

	CreateApplicant(ctx context.Context, req CreateApplicantRequest) (Applicant, error)
	ListApplicants(ctx context.Context, filter ApplicantListFilter) ([]Applicant, int64, error)
	UpdateApplicantStatus(ctx context.Context, req UpdateApplicantStatusRequest) (Applicant, error)

	// Hire promotes an offered applicant into the employee roster in one
	// transaction: employee row created, applicant marked hired.
	Hire(ctx context.Context, req HireApplicantRequest) (employee.Employee, error)

	ScheduleInterview(ctx context.Context, req ScheduleInterviewRequest) (Interview, error)
	ListInterviews(ctx context.Context, applicantID string) ([]Interview, error)
}
