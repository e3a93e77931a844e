package postgresql

import (
	"context"
	"fmt"

	"github.com/peopledesk/hris-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type interviewRepository struct {
	db *database.DB
}

func NewInterviewRepository(db *database.DB) recruitment.InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(ctx context.Context, interview recruitment.Interview) (recruitment.Interview, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO interviews (applicant_id, interviewer_id, scheduled_at, location, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		interview.ApplicantID, interview.InterviewerID, interview.ScheduledAt,
		interview.Location, interview.Notes,
	).Scan(&interview.ID, &interview.CreatedAt, &interview.UpdatedAt)

	if err != nil {
		return recruitment.Interview{}, fmt.Errorf("failed to create interview: %w", err)
	}
	return interview, nil
}

func (r *interviewRepository) ListByApplicant(ctx context.Context, applicantID string) ([]recruitment.Interview, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT i.id, i.applicant_id, i.interviewer_id, i.scheduled_at,
			   i.location, i.notes, i.created_at, i.updated_at,
			   ap.first_name || ' ' || ap.last_name,
			   e.first_name || ' ' || e.last_name
		FROM interviews i
		JOIN applicants ap ON ap.id = i.applicant_id
		JOIN employees e ON e.id = i.interviewer_id
		WHERE i.applicant_id = $1
		ORDER BY i.scheduled_at
	`, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []recruitment.Interview
	for rows.Next() {
		var i recruitment.Interview
		if err := rows.Scan(
			&i.ID, &i.ApplicantID, &i.InterviewerID, &i.ScheduledAt,
			&i.Location, &i.Notes, &i.CreatedAt, &i.UpdatedAt,
			&i.ApplicantName, &i.InterviewerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, i)
	}
	return interviews, rows.Err()
}

func (r *interviewRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrInterviewNotFound
	}
	return nil
}
