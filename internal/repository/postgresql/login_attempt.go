package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type loginAttemptRepository struct {
	db *database.DB
}

func NewLoginAttemptRepository(db *database.DB) audit.LoginAttemptRepository {
	return &loginAttemptRepository{db: db}
}

func (r *loginAttemptRepository) Insert(ctx context.Context, attempt audit.LoginAttempt) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO login_attempts (id, email, ip_address, user_agent, success, attempted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		attempt.ID, attempt.Email, attempt.IPAddress, attempt.UserAgent,
		attempt.Success, attempt.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert login attempt: %w", err)
	}
	return nil
}

func (r *loginAttemptRepository) CountRecentFailures(ctx context.Context, email string, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM login_attempts
		WHERE LOWER(email) = LOWER($1) AND success = FALSE AND attempted_at >= $2
	`, email, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent login failures: %w", err)
	}
	return count, nil
}
