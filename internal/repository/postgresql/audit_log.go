package postgresql

import (
	"context"
	"fmt"

	"github.com/peopledesk/hris-backend-go/internal/domain/audit"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
)

type auditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) audit.LogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Insert(ctx context.Context, entry audit.LogEntry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO audit_logs (id, user_id, action, entity, entity_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		entry.ID, entry.UserID, entry.Action, entry.Entity, entry.EntityID,
		entry.Details, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

func (r *auditLogRepository) List(ctx context.Context, filter audit.ListFilter) ([]audit.LogEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != "" {
		where += fmt.Sprintf(" AND al.user_id = $%d", argIdx)
		args = append(args, filter.UserID)
		argIdx++
	}
	if filter.Action != "" {
		where += fmt.Sprintf(" AND al.action = $%d", argIdx)
		args = append(args, filter.Action)
		argIdx++
	}
	if filter.Entity != "" {
		where += fmt.Sprintf(" AND al.entity = $%d", argIdx)
		args = append(args, filter.Entity)
		argIdx++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND al.created_at >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND al.created_at <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM audit_logs al WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT al.id, al.user_id, al.action, al.entity, al.entity_id,
			   al.details, al.ip_address, al.created_at, u.email
		FROM audit_logs al
		LEFT JOIN users u ON u.id = al.user_id
		WHERE %s
		ORDER BY al.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var entries []audit.LogEntry
	for rows.Next() {
		var e audit.LogEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Action, &e.Entity, &e.EntityID,
			&e.Details, &e.IPAddress, &e.CreatedAt, &e.UserEmail,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
