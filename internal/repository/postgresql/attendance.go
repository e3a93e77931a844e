package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) UpsertClockIn(ctx context.Context, employeeID string, date time.Time, timeIn time.Time) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	// ON CONFLICT DO NOTHING against the unique (employee_id, date) index
	// makes concurrent clock-ins race-safe: exactly one insert wins.
	var a attendance.Attendance
	err := q.QueryRow(ctx, `
		INSERT INTO attendances (employee_id, date, time_in, status)
		VALUES ($1, $2, $3, 'present')
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, employee_id, date, time_in, time_out, status, created_at, updated_at
	`, employeeID, date, timeIn).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.TimeIn, &a.TimeOut, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if err == nil {
		return a, true, nil
	}
	if err != pgx.ErrNoRows {
		return attendance.Attendance{}, false, fmt.Errorf("failed to clock in: %w", err)
	}

	// Conflict path: fetch the row that won.
	existing, err := r.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Attendance{}, false, err
	}
	if existing == nil {
		return attendance.Attendance{}, false, attendance.ErrAttendanceNotFound
	}
	return *existing, false, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var a attendance.Attendance
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, date, time_in, time_out, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.TimeIn, &a.TimeOut, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &a, nil
}

func (r *attendanceRepository) SetTimeOut(ctx context.Context, id string, timeOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendances SET time_out = $1, updated_at = NOW()
		WHERE id = $2 AND time_out IS NULL
	`, timeOut, id)
	if err != nil {
		return fmt.Errorf("failed to set time out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyClockedOut
	}
	return nil
}

func (r *attendanceRepository) ListOnDate(ctx context.Context, date time.Time, filter attendance.ReportFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.time_in, a.time_out, a.status,
			   a.created_at, a.updated_at,
			   e.first_name || ' ' || e.last_name,
			   d.department_name, p.position_title
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		JOIN departments d ON d.id = e.department_id
		JOIN positions p ON p.id = e.position_id
		WHERE a.date = $1
	`
	args := []interface{}{date}
	argIdx := 2

	if filter.Position != "" {
		query += fmt.Sprintf(" AND p.position_title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Position+"%")
		argIdx++
	}
	if filter.Department != "" {
		query += fmt.Sprintf(" AND d.department_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Department+"%")
		argIdx++
	}

	query += " ORDER BY a.time_in DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.TimeIn, &a.TimeOut, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.DepartmentName, &a.PositionTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) ListAbsentOnDate(ctx context.Context, date time.Time, filter attendance.ReportFilter) ([]attendance.AbsentEmployee, error) {
	q := GetQuerier(ctx, r.db)

	// Absence is derived by exclusion: active employees minus everyone with an
	// attendance row or an approved leave covering the date. The count shown
	// in the report is the length of this roster, never a separate query.
	query := `
		SELECT e.id, e.first_name || ' ' || e.last_name,
			   d.department_name, p.position_title
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		JOIN positions p ON p.id = e.position_id
		WHERE e.employment_status = 'active'
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM leave_requests lr
			WHERE lr.employee_id = e.id
			  AND lr.status = 'approved'
			  AND lr.start_date <= $1 AND lr.end_date >= $1
		  )
	`
	args := []interface{}{date}
	argIdx := 2

	if filter.Position != "" {
		query += fmt.Sprintf(" AND p.position_title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Position+"%")
		argIdx++
	}
	if filter.Department != "" {
		query += fmt.Sprintf(" AND d.department_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Department+"%")
		argIdx++
	}

	query += " ORDER BY e.last_name, e.first_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list absent employees: %w", err)
	}
	defer rows.Close()

	var roster []attendance.AbsentEmployee
	for rows.Next() {
		var a attendance.AbsentEmployee
		if err := rows.Scan(&a.EmployeeID, &a.EmployeeName, &a.DepartmentName, &a.PositionTitle); err != nil {
			return nil, fmt.Errorf("failed to scan absent employee: %w", err)
		}
		roster = append(roster, a)
	}
	return roster, rows.Err()
}

func (r *attendanceRepository) ListForEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, date, time_in, time_out, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.TimeIn, &a.TimeOut, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) RemoveDuplicateDays(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM attendances a
		USING attendances keep
		WHERE keep.employee_id = a.employee_id
		  AND keep.date = a.date
		  AND keep.id < a.id
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to remove duplicate attendance days: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *attendanceRepository) CloseStaleSessions(ctx context.Context, olderThan time.Duration) (int64, error) {
	q := GetQuerier(ctx, r.db)

	cutoff := time.Now().Add(-olderThan)
	tag, err := q.Exec(ctx, `
		UPDATE attendances
		SET time_out = time_in + ($1 * INTERVAL '1 hour'), updated_at = NOW()
		WHERE time_out IS NULL AND time_in < $2
	`, int(olderThan.Hours()), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
