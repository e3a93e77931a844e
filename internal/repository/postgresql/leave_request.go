package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hris-backend-go/internal/domain/leave"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
		   lr.total_days, lr.reason, lr.status, lr.approver_id, lr.date_approved,
		   lr.created_at, lr.updated_at,
		   lt.name,
		   e.first_name || ' ' || e.last_name,
		   ap.first_name || ' ' || ap.last_name
	FROM leave_requests lr
	JOIN leave_types lt ON lt.id = lr.leave_type_id
	JOIN employees e ON e.id = lr.employee_id
	LEFT JOIN employees ap ON ap.id = lr.approver_id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate,
		&lr.TotalDays, &lr.Reason, &lr.Status, &lr.ApproverID, &lr.DateApproved,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.LeaveTypeName, &lr.EmployeeName, &lr.ApproverName,
	)
	return lr, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`,
		request.EmployeeID, request.LeaveTypeID, request.StartDate, request.EndDate,
		request.TotalDays, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		where += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests lr WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	listQuery := fmt.Sprintf(
		leaveRequestSelect+` WHERE %s ORDER BY lr.created_at DESC LIMIT $%d OFFSET $%d`,
		where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepository) TransitionStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, approverID string, dateApproved time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Conditional on pending so a concurrent second decision loses the race
	// instead of re-stamping approver and date.
	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, approver_id = $2, date_approved = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`, status, approverID, dateApproved, id)
	if err != nil {
		return false, fmt.Errorf("failed to transition leave request status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *leaveRequestRepository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3 AND end_date >= $2
		)
	`, employeeID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	return exists, nil
}

func (r *leaveRequestRepository) ListApprovedOnDate(ctx context.Context, date time.Time, filter attendance.ReportFilter) ([]leave.OnLeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Employees who clocked in despite an approved leave count as present, so
	// rows with an attendance record for the date are excluded here.
	query := `
		SELECT e.id, e.first_name || ' ' || e.last_name,
			   d.department_name, p.position_title,
			   lt.name, lr.id
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		JOIN departments d ON d.id = e.department_id
		JOIN positions p ON p.id = e.position_id
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.status = 'approved'
		  AND lr.start_date <= $1 AND lr.end_date >= $1
		  AND e.employment_status = 'active'
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
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
		return nil, fmt.Errorf("failed to list approved leave for date: %w", err)
	}
	defer rows.Close()

	var records []leave.OnLeaveRecord
	for rows.Next() {
		var rec leave.OnLeaveRecord
		if err := rows.Scan(
			&rec.EmployeeID, &rec.EmployeeName, &rec.DepartmentName,
			&rec.PositionTitle, &rec.LeaveTypeName, &rec.LeaveRequestID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan on-leave record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
