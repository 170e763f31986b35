package repository

import (
	"context"
	"fmt"

	"github.com/memora/intake/internal/models"
)

// CreateAuditRecord сохраняет строку журнала аудита.
func (s *Storage) CreateAuditRecord(ctx context.Context, event models.AuditEvent) (int, error) {
	const op = "storage.CreateAuditRecord"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO audit_log (actor_uid, actor_name, action, entity_type,
			      entity_id, occurred_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		event.ActorUID, event.ActorName, event.Action, event.EntityType,
		event.EntityID, event.OccurredAt).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListAuditRecords возвращает строки журнала аудита, новые первыми.
func (s *Storage) ListAuditRecords(ctx context.Context, limit, offset int) ([]*models.AuditRecord, error) {
	const op = "storage.ListAuditRecords"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, actor_uid, actor_name, action, entity_type, entity_id, occurred_at
			  FROM audit_log
			  ORDER BY occurred_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.AuditRecord
	for rows.Next() {
		var r models.AuditRecord
		if err = rows.Scan(&r.ID, &r.ActorUID, &r.ActorName, &r.Action,
			&r.EntityType, &r.EntityID, &r.OccurredAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
