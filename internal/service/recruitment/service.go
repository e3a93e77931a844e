package recruitment

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	"github.com/peopledesk/hris-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
	"github.com/peopledesk/hris-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type RecruitmentServiceImpl struct {
	db                   *database.DB
	jobOpeningRepository recruitment.JobOpeningRepository
	applicantRepository  recruitment.ApplicantRepository
	interviewRepository  recruitment.InterviewRepository
	employeeRepository   employee.EmployeeRepository
	auditRecorder        audit.Recorder
	now                  func() time.Time
}

func NewRecruitmentService(
	db *database.DB,
	jobOpeningRepository recruitment.JobOpeningRepository,
	applicantRepository recruitment.ApplicantRepository,
	interviewRepository recruitment.InterviewRepository,
	employeeRepository employee.EmployeeRepository,
	auditRecorder audit.Recorder,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		db:                   db,
		jobOpeningRepository: jobOpeningRepository,
		applicantRepository:  applicantRepository,
		interviewRepository:  interviewRepository,
		employeeRepository:   employeeRepository,
		auditRecorder:        auditRecorder,
		now:                  time.Now,
	}
}

func (s *RecruitmentServiceImpl) CreateOpening(ctx context.Context, req recruitment.CreateJobOpeningRequest) (recruitment.JobOpening, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobOpening{}, err
	}

	created, err := s.jobOpeningRepository.Create(ctx, recruitment.JobOpening{
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		Description:  req.Description,
		Status:       recruitment.JobOpeningStatusOpen,
		PostedAt:     s.now(),
	})
	if err != nil {
		return recruitment.JobOpening{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionOpeningCreate,
		Entity:   "job_opening",
		EntityID: &created.ID,
	})

	return s.jobOpeningRepository.GetByID(ctx, created.ID)
}

func (s *RecruitmentServiceImpl) UpdateOpening(ctx context.Context, req recruitment.UpdateJobOpeningRequest) (recruitment.JobOpening, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobOpening{}, err
	}

	if err := s.jobOpeningRepository.Update(ctx, req); err != nil {
		return recruitment.JobOpening{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionOpeningUpdate,
		Entity:   "job_opening",
		EntityID: &req.ID,
	})

	return s.jobOpeningRepository.GetByID(ctx, req.ID)
}

func (s *RecruitmentServiceImpl) ListOpenings(ctx context.Context, status string) ([]recruitment.JobOpening, error) {
	if status != string(recruitment.JobOpeningStatusOpen) && status != string(recruitment.JobOpeningStatusClosed) {
		status = ""
	}
	return s.jobOpeningRepository.List(ctx, status)
}

func (s *RecruitmentServiceImpl) CreateApplicant(ctx context.Context, req recruitment.CreateApplicantRequest) (recruitment.Applicant, error) {
	if err := req.Validate(); err != nil {
		return recruitment.Applicant{}, err
	}

	opening, err := s.jobOpeningRepository.GetByID(ctx, req.JobOpeningID)
	if err != nil {
		return recruitment.Applicant{}, err
	}
	if opening.Status != recruitment.JobOpeningStatusOpen {
		return recruitment.Applicant{}, recruitment.ErrJobOpeningClosed
	}

	exists, err := s.applicantRepository.ExistsByOpeningAndEmail(ctx, req.JobOpeningID, req.Email)
	if err != nil {
		return recruitment.Applicant{}, err
	}
	if exists {
		return recruitment.Applicant{}, recruitment.ErrApplicantEmailExists
	}

	created, err := s.applicantRepository.Create(ctx, recruitment.Applicant{
		JobOpeningID: req.JobOpeningID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		ResumeURL:    req.ResumeURL,
		Status:       recruitment.ApplicantStatusApplied,
		AppliedAt:    s.now(),
	})
	if err != nil {
		return recruitment.Applicant{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionApplicantCreate,
		Entity:   "applicant",
		EntityID: &created.ID,
	})

	return s.applicantRepository.GetByID(ctx, created.ID)
}

func (s *RecruitmentServiceImpl) ListApplicants(ctx context.Context, filter recruitment.ApplicantListFilter) ([]recruitment.Applicant, int64, error) {
	filter.Normalize()
	return s.applicantRepository.List(ctx, filter)
}

func (s *RecruitmentServiceImpl) UpdateApplicantStatus(ctx context.Context, req recruitment.UpdateApplicantStatusRequest) (recruitment.Applicant, error) {
	if err := req.Validate(); err != nil {
		return recruitment.Applicant{}, err
	}

	applicant, err := s.applicantRepository.GetByID(ctx, req.ApplicantID)
	if err != nil {
		return recruitment.Applicant{}, err
	}

	target := recruitment.ApplicantStatus(req.Status)
	if target == recruitment.ApplicantStatusHired {
		// Hiring goes through Hire so the employee record is created in the
		// same transaction.
		return recruitment.Applicant{}, recruitment.ErrApplicantNotHireable
	}
	if !recruitment.CanTransition(applicant.Status, target) {
		return recruitment.Applicant{}, recruitment.ErrInvalidTransition
	}

	applied, err := s.applicantRepository.UpdateStatus(ctx, applicant.ID, applicant.Status, target)
	if err != nil {
		return recruitment.Applicant{}, err
	}
	if !applied {
		return recruitment.Applicant{}, recruitment.ErrInvalidTransition
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionApplicantStatus,
		Entity:   "applicant",
		EntityID: &applicant.ID,
	})

	return s.applicantRepository.GetByID(ctx, applicant.ID)
}

// Hire promotes an offered applicant into the employee roster. The status
// transition, employee creation and back-link are one transaction, so a
// partially hired applicant can never exist.
func (s *RecruitmentServiceImpl) Hire(ctx context.Context, req recruitment.HireApplicantRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	applicant, err := s.applicantRepository.GetByID(ctx, req.ApplicantID)
	if err != nil {
		return employee.Employee{}, err
	}
	if applicant.Status == recruitment.ApplicantStatusHired {
		return employee.Employee{}, recruitment.ErrApplicantAlreadyHired
	}
	if applicant.Status != recruitment.ApplicantStatusOffered {
		return employee.Employee{}, recruitment.ErrApplicantNotHireable
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid hire_date: %w", err)
	}

	newEmployee := employee.Employee{
		FirstName:        applicant.FirstName,
		LastName:         applicant.LastName,
		Gender:           employee.Gender(req.Gender),
		Email:            &applicant.Email,
		DepartmentID:     req.DepartmentID,
		PositionID:       req.PositionID,
		HireDate:         hireDate,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
	if applicant.PhoneNumber != nil {
		newEmployee.PhoneNumber = *applicant.PhoneNumber
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid base_salary: %w", err)
		}
		newEmployee.BaseSalary = &salary
	}

	var hired employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		applied, err := s.applicantRepository.UpdateStatus(txCtx, applicant.ID, recruitment.ApplicantStatusOffered, recruitment.ApplicantStatusHired)
		if err != nil {
			return err
		}
		if !applied {
			return recruitment.ErrInvalidTransition
		}

		hired, err = s.employeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}

		return s.applicantRepository.MarkHired(txCtx, applicant.ID, hired.ID)
	})
	if err != nil {
		return employee.Employee{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionApplicantHire,
		Entity:   "applicant",
		EntityID: &applicant.ID,
		Details:  &hired.ID,
	})

	return s.employeeRepository.GetByID(ctx, hired.ID)
}

func (s *RecruitmentServiceImpl) ScheduleInterview(ctx context.Context, req recruitment.ScheduleInterviewRequest) (recruitment.Interview, error) {
	if err := req.Validate(); err != nil {
		return recruitment.Interview{}, err
	}

	applicant, err := s.applicantRepository.GetByID(ctx, req.ApplicantID)
	if err != nil {
		return recruitment.Interview{}, err
	}
	if applicant.Status.IsTerminal() {
		return recruitment.Interview{}, recruitment.ErrInvalidTransition
	}

	if _, err := s.employeeRepository.GetByID(ctx, req.InterviewerID); err != nil {
		return recruitment.Interview{}, recruitment.ErrInterviewerNotFound
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return recruitment.Interview{}, fmt.Errorf("invalid scheduled_at: %w", err)
	}
	if scheduledAt.Before(s.now()) {
		return recruitment.Interview{}, recruitment.ErrInterviewInPast
	}

	created, err := s.interviewRepository.Create(ctx, recruitment.Interview{
		ApplicantID:   req.ApplicantID,
		InterviewerID: req.InterviewerID,
		ScheduledAt:   scheduledAt,
		Location:      req.Location,
		Notes:         req.Notes,
	})
	if err != nil {
		return recruitment.Interview{}, err
	}

	// Scheduling pulls a screening applicant into the interview stage. The
	// conditional update makes a concurrent move a no-op rather than an error.
	if applicant.Status == recruitment.ApplicantStatusScreening {
		if _, err := s.applicantRepository.UpdateStatus(ctx, applicant.ID, recruitment.ApplicantStatusScreening, recruitment.ApplicantStatusInterview); err != nil {
			return recruitment.Interview{}, err
		}
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionInterviewSchedule,
		Entity:   "interview",
		EntityID: &created.ID,
	})

	return created, nil
}

func (s *RecruitmentServiceImpl) ListInterviews(ctx context.Context, applicantID string) ([]recruitment.Interview, error) {
	if _, err := s.applicantRepository.GetByID(ctx, applicantID); err != nil {
		return nil, err
	}
	return s.interviewRepository.ListByApplicant(ctx, applicantID)
}
