package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type jobOpeningRepository struct {
	db *database.DB
}

func NewJobOpeningRepository(db *database.DB) recruitment.JobOpeningRepository {
	return &jobOpeningRepository{db: db}
}

const jobOpeningSelect = `
	SELECT jo.id, jo.title, jo.department_id, jo.position_id, jo.description,
		   jo.status, jo.posted_at, jo.closed_at, jo.created_at, jo.updated_at,
		   d.department_name, p.position_title,
		   (SELECT COUNT(*) FROM applicants ap WHERE ap.job_opening_id = jo.id)
	FROM job_openings jo
	JOIN departments d ON d.id = jo.department_id
	JOIN positions p ON p.id = jo.position_id
`

func scanJobOpening(row pgx.Row) (recruitment.JobOpening, error) {
	var jo recruitment.JobOpening
	err := row.Scan(
		&jo.ID, &jo.Title, &jo.DepartmentID, &jo.PositionID, &jo.Description,
		&jo.Status, &jo.PostedAt, &jo.ClosedAt, &jo.CreatedAt, &jo.UpdatedAt,
		&jo.DepartmentName, &jo.PositionTitle, &jo.ApplicantCount,
	)
	return jo, err
}

func (r *jobOpeningRepository) Create(ctx context.Context, opening recruitment.JobOpening) (recruitment.JobOpening, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO job_openings (title, department_id, position_id, description, status, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`,
		opening.Title, opening.DepartmentID, opening.PositionID,
		opening.Description, opening.Status, opening.PostedAt,
	).Scan(&opening.ID, &opening.CreatedAt, &opening.UpdatedAt)

	if err != nil {
		return recruitment.JobOpening{}, fmt.Errorf("failed to create job opening: %w", err)
	}
	return opening, nil
}

func (r *jobOpeningRepository) GetByID(ctx context.Context, id string) (recruitment.JobOpening, error) {
	q := GetQuerier(ctx, r.db)

	jo, err := scanJobOpening(q.QueryRow(ctx, jobOpeningSelect+` WHERE jo.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return recruitment.JobOpening{}, recruitment.ErrJobOpeningNotFound
		}
		return recruitment.JobOpening{}, fmt.Errorf("failed to get job opening: %w", err)
	}
	return jo, nil
}

func (r *jobOpeningRepository) List(ctx context.Context, status string) ([]recruitment.JobOpening, error) {
	q := GetQuerier(ctx, r.db)

	query := jobOpeningSelect
	args := []interface{}{}
	if status != "" {
		query += ` WHERE jo.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY jo.posted_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job openings: %w", err)
	}
	defer rows.Close()

	var openings []recruitment.JobOpening
	for rows.Next() {
		jo, err := scanJobOpening(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job opening: %w", err)
		}
		openings = append(openings, jo)
	}
	return openings, rows.Err()
}

func (r *jobOpeningRepository) Update(ctx context.Context, req recruitment.UpdateJobOpeningRequest) error {
	q := GetQuerier(ctx, r.db)

	set := "updated_at = NOW()"
	args := []interface{}{}
	argIdx := 1

	addField := func(column string, value interface{}) {
		set += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Title != nil {
		addField("title", *req.Title)
	}
	if req.Description != nil {
		addField("description", *req.Description)
	}
	if req.Status != nil {
		addField("status", *req.Status)
		if *req.Status == string(recruitment.JobOpeningStatusClosed) {
			set += ", closed_at = NOW()"
		} else {
			set += ", closed_at = NULL"
		}
	}

	query := fmt.Sprintf("UPDATE job_openings SET %s WHERE id = $%d", set, argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job opening: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrJobOpeningNotFound
	}
	return nil
}

func (r *jobOpeningRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM job_openings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job opening: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrJobOpeningNotFound
	}
	return nil
}
