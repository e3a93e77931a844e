package master

import (
	"context"

	"github.com/peopledesk/hris-backend-go/internal/domain/master/department"
	"github.com/peopledesk/hris-backend-go/internal/domain/master/position"
)

// MasterService groups the lookup-table operations behind one surface. Both
// tables are small and uncached; every read hits the database.
type MasterService interface {
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	ListDepartments(ctx context.Context) ([]department.Department, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error)
	ListPositions(ctx context.Context) ([]position.Position, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error)
	DeletePosition(ctx context.Context, id string) error
}

type MasterServiceImpl struct {
	departmentRepository department.DepartmentRepository
	positionRepository   position.PositionRepository
}

func NewMasterService(
	departmentRepository department.DepartmentRepository,
	positionRepository position.PositionRepository,
) MasterService {
	return &MasterServiceImpl{
		departmentRepository: departmentRepository,
		positionRepository:   positionRepository,
	}
}

func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}
	return s.departmentRepository.Create(ctx, department.Department{Name: req.Name})
}

func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.departmentRepository.List(ctx)
}

func (s *MasterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}
	if err := s.departmentRepository.Update(ctx, req); err != nil {
		return department.Department{}, err
	}
	return s.departmentRepository.GetByID(ctx, req.ID)
}

func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepository.Delete(ctx, id)
}

func (s *MasterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}
	return s.positionRepository.Create(ctx, position.Position{Title: req.Title})
}

func (s *MasterServiceImpl) ListPositions(ctx context.Context) ([]position.Position, error) {
	return s.positionRepository.List(ctx)
}

func (s *MasterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}
	if err := s.positionRepository.Update(ctx, req); err != nil {
		return position.Position{}, err
	}
	return s.positionRepository.GetByID(ctx, req.ID)
}

func (s *MasterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	return s.positionRepository.Delete(ctx, id)
}
