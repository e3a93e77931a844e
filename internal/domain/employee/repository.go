package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	SetEmploymentStatus(ctx context.Context, id string, status EmploymentStatus) error
	CountActive(ctx context.Context) (int64, error)
	EmailExists(ctx context.Context, email string, excludeID *string) (bool, error)
}

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Archive(ctx context.Context, id string, actorEmployeeID *string) error
	Unarchive(ctx context.Context, id string) error
}
