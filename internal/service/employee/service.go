package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	"github.com/peopledesk/hris-backend-go/internal/domain/master/department"
	"github.com/peopledesk/hris-backend-go/internal/domain/master/position"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepository   employee.EmployeeRepository
	departmentRepository department.DepartmentRepository
	positionRepository   position.PositionRepository
	auditRecorder        audit.Recorder
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	departmentRepository department.DepartmentRepository,
	positionRepository position.PositionRepository,
	auditRecorder audit.Recorder,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepository:   employeeRepository,
		departmentRepository: departmentRepository,
		positionRepository:   positionRepository,
		auditRecorder:        auditRecorder,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.departmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.Employee{}, err
	}
	if _, err := s.positionRepository.GetByID(ctx, req.PositionID); err != nil {
		return employee.Employee{}, err
	}

	if req.Email != nil {
		exists, err := s.employeeRepository.EmailExists(ctx, *req.Email, nil)
		if err != nil {
			return employee.Employee{}, err
		}
		if exists {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid hire_date: %w", err)
	}

	newEmployee := employee.Employee{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           employee.Gender(req.Gender),
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		DepartmentID:     req.DepartmentID,
		PositionID:       req.PositionID,
		HireDate:         hireDate,
		EmploymentStatus: employee.EmploymentStatusActive,
	}

	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid dob: %w", err)
		}
		newEmployee.DOB = &dob
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid base_salary: %w", err)
		}
		newEmployee.BaseSalary = &salary
	}

	created, err := s.employeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.Employee{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionEmployeeCreate,
		Entity:   "employee",
		EntityID: &created.ID,
	})

	return s.employeeRepository.GetByID(ctx, created.ID)
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	existing, err := s.employeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.Employee{}, err
		}
	}
	if req.PositionID != nil {
		if _, err := s.positionRepository.GetByID(ctx, *req.PositionID); err != nil {
			return employee.Employee{}, err
		}
	}
	if req.Email != nil {
		exists, err := s.employeeRepository.EmailExists(ctx, *req.Email, &existing.ID)
		if err != nil {
			return employee.Employee{}, err
		}
		if exists {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	if err := s.employeeRepository.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionEmployeeUpdate,
		Entity:   "employee",
		EntityID: &req.ID,
	})

	return s.employeeRepository.GetByID(ctx, req.ID)
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepository.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	filter.Normalize()
	return s.employeeRepository.List(ctx, filter)
}

// Archive moves an employee to the inactive roster. Admins cannot archive
// their own record, so the system always retains at least one active actor.
func (s *EmployeeServiceImpl) Archive(ctx context.Context, id string, actorEmployeeID *string) error {
	if actorEmployeeID != nil && *actorEmployeeID == id {
		return employee.ErrCannotArchiveSelf
	}

	existing, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !existing.IsActive() {
		return employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepository.SetEmploymentStatus(ctx, id, employee.EmploymentStatusInactive); err != nil {
		return err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionEmployeeArchive,
		Entity:   "employee",
		EntityID: &id,
	})
	return nil
}

func (s *EmployeeServiceImpl) Unarchive(ctx context.Context, id string) error {
	existing, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsActive() {
		return employee.ErrEmployeeAlreadyActive
	}

	if err := s.employeeRepository.SetEmploymentStatus(ctx, id, employee.EmploymentStatusActive); err != nil {
		return err
	}

	s.auditRecorder.Record(ctx, audit.LogEntry{
		Action:   audit.ActionEmployeeUnarchive,
		Entity:   "employee",
		EntityID: &id,
	})
	return nil
}
