package recruitment

import (
	"context"
	"testing"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	domain "github.com/peopledesk/hris-backend-go/internal/domain/recruitment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOpeningRepo struct {
	openings map[string]domain.JobOpening
}

func (f *fakeOpeningRepo) Create(ctx context.Context, o domain.JobOpening) (domain.JobOpening, error) {
	o.ID = "op-" + o.Title
	if f.openings == nil {
		f.openings = map[string]domain.JobOpening{}
	}
	f.openings[o.ID] = o
	return o, nil
}

func (f *fakeOpeningRepo) GetByID(ctx context.Context, id string) (domain.JobOpening, error) {
	if o, ok := f.openings[id]; ok {
		return o, nil
	}
	return domain.JobOpening{}, domain.ErrJobOpeningNotFound
}

func (f *fakeOpeningRepo) List(ctx context.Context, status string) ([]domain.JobOpening, error) {
	return nil, nil
}

func (f *fakeOpeningRepo) Update(ctx context.Context, req domain.UpdateJobOpeningRequest) error {
	return nil
}

func (f *fakeOpeningRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeApplicantRepo struct {
	applicants map[string]*domain.Applicant
	emails     map[string]bool
}

func (f *fakeApplicantRepo) Create(ctx context.Context, a domain.Applicant) (domain.Applicant, error) {
	a.ID = "app-" + a.Email
	if f.applicants == nil {
		f.applicants = map[string]*domain.Applicant{}
	}
	f.applicants[a.ID] = &a
	return a, nil
}

func (f *fakeApplicantRepo) GetByID(ctx context.Context, id string) (domain.Applicant, error) {
	if a, ok := f.applicants[id]; ok {
		return *a, nil
	}
	return domain.Applicant{}, domain.ErrApplicantNotFound
}

func (f *fakeApplicantRepo) List(ctx context.Context, filter domain.ApplicantListFilter) ([]domain.Applicant, int64, error) {
	return nil, 0, nil
}

func (f *fakeApplicantRepo) ExistsByOpeningAndEmail(ctx context.Context, jobOpeningID string, email string) (bool, error) {
	return f.emails[email], nil
}

func (f *fakeApplicantRepo) UpdateStatus(ctx context.Context, id string, from, to domain.ApplicantStatus) (bool, error) {
	a, ok := f.applicants[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	return true, nil
}

func (f *fakeApplicantRepo) MarkHired(ctx context.Context, id string, employeeID string) error {
	if a, ok := f.applicants[id]; ok {
		a.EmployeeID = &employeeID
	}
	return nil
}

type fakeInterviewRepo struct {
	created []domain.Interview
}

func (f *fakeInterviewRepo) Create(ctx context.Context, iv domain.Interview) (domain.Interview, error) {
	iv.ID = "iv-1"
	f.created = append(f.created, iv)
	return iv, nil
}

func (f *fakeInterviewRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Interview, error) {
	return f.created, nil
}

func (f *fakeInterviewRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-new"
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) SetEmploymentStatus(ctx context.Context, id string, status employee.EmploymentStatus) error {
	return nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeEmployeeRepo) EmailExists(ctx context.Context, email string, excludeID *string) (bool, error) {
	return false, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, entry audit.LogEntry) {}

func newTestService(openings *fakeOpeningRepo, applicants *fakeApplicantRepo, interviews *fakeInterviewRepo, employees *fakeEmployeeRepo) *RecruitmentServiceImpl {
	svc := NewRecruitmentService(nil, openings, applicants, interviews, employees, nopRecorder{}).(*RecruitmentServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func applicantWithStatus(id string, status domain.ApplicantStatus) *domain.Applicant {
	return &domain.Applicant{
		ID:           id,
		JobOpeningID: "op-1",
		FirstName:    "Sam",
		LastName:     "Lee",
		Email:        "sam.lee@example.com",
		Status:       status,
	}
}

func TestCreateApplicant(t *testing.T) {
	openings := &fakeOpeningRepo{openings: map[string]domain.JobOpening{
		"op-open":   {ID: "op-open", Status: domain.JobOpeningStatusOpen},
		"op-closed": {ID: "op-closed", Status: domain.JobOpeningStatusClosed},
	}}

	t.Run("new applicant starts as applied", func(t *testing.T) {
		applicants := &fakeApplicantRepo{}
		svc := newTestService(openings, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		created, err := svc.CreateApplicant(context.Background(), domain.CreateApplicantRequest{
			JobOpeningID: "op-open",
			FirstName:    "Sam",
			LastName:     "Lee",
			Email:        "sam.lee@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicantStatusApplied, created.Status)
	})

	t.Run("closed opening rejects applications", func(t *testing.T) {
		svc := newTestService(openings, &fakeApplicantRepo{}, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.CreateApplicant(context.Background(), domain.CreateApplicantRequest{
			JobOpeningID: "op-closed",
			FirstName:    "Sam",
			LastName:     "Lee",
			Email:        "sam.lee@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrJobOpeningClosed)
	})

	t.Run("duplicate email for the same opening is rejected", func(t *testing.T) {
		applicants := &fakeApplicantRepo{emails: map[string]bool{"sam.lee@example.com": true}}
		svc := newTestService(openings, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.CreateApplicant(context.Background(), domain.CreateApplicantRequest{
			JobOpeningID: "op-open",
			FirstName:    "Sam",
			LastName:     "Lee",
			Email:        "sam.lee@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrApplicantEmailExists)
	})
}

func TestUpdateApplicantStatus(t *testing.T) {
	t.Run("advances one step through the pipeline", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusApplied),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		updated, err := svc.UpdateApplicantStatus(context.Background(), domain.UpdateApplicantStatusRequest{
			ApplicantID: "app-1",
			Status:      string(domain.ApplicantStatusScreening),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicantStatusScreening, updated.Status)
	})

	t.Run("skipping pipeline steps is rejected", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusApplied),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.UpdateApplicantStatus(context.Background(), domain.UpdateApplicantStatusRequest{
			ApplicantID: "app-1",
			Status:      string(domain.ApplicantStatusOffered),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("hired status must go through Hire", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusOffered),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.UpdateApplicantStatus(context.Background(), domain.UpdateApplicantStatusRequest{
			ApplicantID: "app-1",
			Status:      string(domain.ApplicantStatusHired),
		})
		assert.ErrorIs(t, err, domain.ErrApplicantNotHireable)
	})

	t.Run("reject works from any non-terminal state", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusInterview),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		updated, err := svc.UpdateApplicantStatus(context.Background(), domain.UpdateApplicantStatusRequest{
			ApplicantID: "app-1",
			Status:      string(domain.ApplicantStatusRejected),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicantStatusRejected, updated.Status)
	})

	t.Run("terminal applicants stay put", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusRejected),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.UpdateApplicantStatus(context.Background(), domain.UpdateApplicantStatusRequest{
			ApplicantID: "app-1",
			Status:      string(domain.ApplicantStatusScreening),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestHireGuards(t *testing.T) {
	hireReq := func(id string) domain.HireApplicantRequest {
		return domain.HireApplicantRequest{
			ApplicantID:  id,
			DepartmentID: "dept-1",
			PositionID:   "pos-1",
			HireDate:     "2025-04-01",
			Gender:       "Female",
		}
	}

	t.Run("already hired applicant cannot be hired twice", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusHired),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.Hire(context.Background(), hireReq("app-1"))
		assert.ErrorIs(t, err, domain.ErrApplicantAlreadyHired)
	})

	t.Run("only offered applicants are hireable", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusInterview),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.Hire(context.Background(), hireReq("app-1"))
		assert.ErrorIs(t, err, domain.ErrApplicantNotHireable)
	})
}

func TestScheduleInterview(t *testing.T) {
	interviewer := employee.Employee{ID: "emp-9", EmploymentStatus: employee.EmploymentStatusActive}

	t.Run("schedules for a pipeline applicant", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusScreening),
		}}
		employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-9": interviewer}}
		interviews := &fakeInterviewRepo{}
		svc := newTestService(&fakeOpeningRepo{}, applicants, interviews, employees)

		created, err := svc.ScheduleInterview(context.Background(), domain.ScheduleInterviewRequest{
			ApplicantID:   "app-1",
			InterviewerID: "emp-9",
			ScheduledAt:   "2025-03-12T14:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "app-1", created.ApplicantID)
		assert.Len(t, interviews.created, 1)

		// Scheduling advances a screening applicant to the interview stage.
		assert.Equal(t, domain.ApplicantStatusInterview, applicants.applicants["app-1"].Status)
	})

	t.Run("past schedule is rejected", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusScreening),
		}}
		employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-9": interviewer}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, employees)

		_, err := svc.ScheduleInterview(context.Background(), domain.ScheduleInterviewRequest{
			ApplicantID:   "app-1",
			InterviewerID: "emp-9",
			ScheduledAt:   "2025-03-01T14:00:00Z",
		})
		assert.ErrorIs(t, err, domain.ErrInterviewInPast)
	})

	t.Run("unknown interviewer is rejected", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusScreening),
		}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, &fakeEmployeeRepo{})

		_, err := svc.ScheduleInterview(context.Background(), domain.ScheduleInterviewRequest{
			ApplicantID:   "app-1",
			InterviewerID: "emp-9",
			ScheduledAt:   "2025-03-12T14:00:00Z",
		})
		assert.ErrorIs(t, err, domain.ErrInterviewerNotFound)
	})

	t.Run("terminal applicant cannot be scheduled", func(t *testing.T) {
		applicants := &fakeApplicantRepo{applicants: map[string]*domain.Applicant{
			"app-1": applicantWithStatus("app-1", domain.ApplicantStatusHired),
		}}
		employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-9": interviewer}}
		svc := newTestService(&fakeOpeningRepo{}, applicants, &fakeInterviewRepo{}, employees)

		_, err := svc.ScheduleInterview(context.Background(), domain.ScheduleInterviewRequest{
			ApplicantID:   "app-1",
			InterviewerID: "emp-9",
			ScheduledAt:   "2025-03-12T14:00:00Z",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}
