package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type applicantRepository struct {
	db *database.DB
}

func NewApplicantRepository(db *database.DB) recruitment.ApplicantRepository {
	return &applicantRepository{db: db}
}

const applicantSelect = `
	SELECT ap.id, ap.job_opening_id, ap.first_name, ap.last_name, ap.email,
		   ap.phone_number, ap.resume_url, ap.status, ap.applied_at,
		   ap.created_at, ap.updated_at,
		   jo.title, ap.employee_id
	FROM applicants ap
	JOIN job_openings jo ON jo.id = ap.job_opening_id
`

func scanApplicant(row pgx.Row) (recruitment.Applicant, error) {
	var a recruitment.Applicant
	err := row.Scan(
		&a.ID, &a.JobOpeningID, &a.FirstName, &a.LastName, &a.Email,
		&a.PhoneNumber, &a.ResumeURL, &a.Status, &a.AppliedAt,
		&a.CreatedAt, &a.UpdatedAt,
		&a.JobTitle, &a.EmployeeID,
	)
	return a, err
}

func (r *applicantRepository) Create(ctx context.Context, applicant recruitment.Applicant) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO applicants (job_opening_id, first_name, last_name, email, phone_number, resume_url, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`,
		applicant.JobOpeningID, applicant.FirstName, applicant.LastName,
		applicant.Email, applicant.PhoneNumber, applicant.ResumeURL,
		applicant.Status, applicant.AppliedAt,
	).Scan(&applicant.ID, &applicant.CreatedAt, &applicant.UpdatedAt)

	if err != nil {
		return recruitment.Applicant{}, fmt.Errorf("failed to create applicant: %w", err)
	}
	return applicant, nil
}

func (r *applicantRepository) GetByID(ctx context.Context, id string) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanApplicant(q.QueryRow(ctx, applicantSelect+` WHERE ap.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.Applicant{}, recruitment.ErrApplicantNotFound
		}
		return recruitment.Applicant{}, fmt.Errorf("failed to get applicant: %w", err)
	}
	return a, nil
}

func (r *applicantRepository) List(ctx context.Context, filter recruitment.ApplicantListFilter) ([]recruitment.Applicant, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.JobOpeningID != "" {
		where += fmt.Sprintf(" AND ap.job_opening_id = $%d", argIdx)
		args = append(args, filter.JobOpeningID)
		argIdx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND ap.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(
			" AND (ap.first_name ILIKE $%d OR ap.last_name ILIKE $%d OR ap.email ILIKE $%d)",
			argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM applicants ap WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applicants: %w", err)
	}

	listQuery := fmt.Sprintf(
		applicantSelect+` WHERE %s ORDER BY ap.applied_at DESC LIMIT $%d OFFSET $%d`,
		where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []recruitment.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applicants, total, nil
}

func (r *applicantRepository) ExistsByOpeningAndEmail(ctx context.Context, jobOpeningID string, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM applicants
			WHERE job_opening_id = $1 AND LOWER(email) = LOWER($2)
		)
	`, jobOpeningID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check applicant email: %w", err)
	}
	return exists, nil
}

func (r *applicantRepository) UpdateStatus(ctx context.Context, id string, from, to recruitment.ApplicantStatus) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE applicants SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update applicant status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *applicantRepository) MarkHired(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE applicants SET employee_id = $1, updated_at = NOW()
		WHERE id = $2 AND employee_id IS NULL
	`, employeeID, id)
	if err != nil {
		return fmt.Errorf("failed to mark applicant hired: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrApplicantNotFound
	}
	return nil
}
