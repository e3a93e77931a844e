package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT e.id, e.user_id, e.first_name, e.last_name, e.gender, e.email,
		   e.phone_number, e.address, e.dob, e.department_id, e.position_id,
		   e.hire_date, e.base_salary, e.employment_status,
		   e.created_at, e.updated_at,
		   d.department_name, p.position_title
	FROM employees e
	JOIN departments d ON d.id = e.department_id
	JOIN positions p ON p.id = e.position_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.FirstName, &e.LastName, &e.Gender, &e.Email,
		&e.PhoneNumber, &e.Address, &e.DOB, &e.DepartmentID, &e.PositionID,
		&e.HireDate, &e.BaseSalary, &e.EmploymentStatus,
		&e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.PositionTitle,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, first_name, last_name, gender, email, phone_number,
			address, dob, department_id, position_id, hire_date, base_salary,
			employment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Gender,
		newEmployee.Email,
		newEmployee.PhoneNumber,
		newEmployee.Address,
		newEmployee.DOB,
		newEmployee.DepartmentID,
		newEmployee.PositionID,
		newEmployee.HireDate,
		newEmployee.BaseSalary,
		newEmployee.EmploymentStatus,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build SET clause from the provided fields only
	set := "updated_at = NOW()"
	args := []interface{}{}
	argIdx := 1

	addField := func(column string, value interface{}) {
		set += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.FirstName != nil {
		addField("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		addField("last_name", *req.LastName)
	}
	if req.Gender != nil {
		addField("gender", *req.Gender)
	}
	if req.Email != nil {
		addField("email", *req.Email)
	}
	if req.PhoneNumber != nil {
		addField("phone_number", *req.PhoneNumber)
	}
	if req.Address != nil {
		addField("address", *req.Address)
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return fmt.Errorf("invalid dob: %w", err)
		}
		addField("dob", dob)
	}
	if req.DepartmentID != nil {
		addField("department_id", *req.DepartmentID)
	}
	if req.PositionID != nil {
		addField("position_id", *req.PositionID)
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return fmt.Errorf("invalid base_salary: %w", err)
		}
		addField("base_salary", salary)
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", set, argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	status := employee.EmploymentStatusActive
	if filter.View == "archived" {
		status = employee.EmploymentStatusInactive
	}

	baseWhere := "e.employment_status = $1"
	args := []interface{}{status}
	argIdx := 2

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND d.department_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Department+"%")
		argIdx++
	}
	if filter.Position != "" {
		baseWhere += fmt.Sprintf(" AND p.position_title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Position+"%")
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		JOIN positions p ON p.id = e.position_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	listQuery := fmt.Sprintf(
		employeeSelect+` WHERE %s ORDER BY e.last_name, e.first_name LIMIT $%d OFFSET $%d`,
		baseWhere, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepository) SetEmploymentStatus(ctx context.Context, id string, status employee.EmploymentStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET employment_status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set employment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE employment_status = $1`,
		employee.EmploymentStatusActive,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

func (r *employeeRepository) EmailExists(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1)`
	args := []interface{}{email}
	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}
