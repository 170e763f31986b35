package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/memora/intake/internal/models"
)

// ListActiveDictionaryEntries возвращает активные словарные записи,
// упорядоченные по sort_order по возрастанию.
func (s *Storage) ListActiveDictionaryEntries(ctx context.Context) ([]models.DictionaryEntry, error) {
	const op = "storage.ListActiveDictionaryEntries"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, category, name, value, sort_order, is_active
			  FROM dictionaries
			  WHERE is_active = TRUE
			  ORDER BY sort_order ASC`
	return s.queryDictionaryEntries(ctx, op, query)
}

// ListDictionaryEntries возвращает все словарные записи, с фильтром
// по категории, если она задана.
func (s *Storage) ListDictionaryEntries(ctx context.Context, category string) ([]models.DictionaryEntry, error) {
	const op = "storage.ListDictionaryEntries"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if category != "" {
		query := `SELECT id, category, name, value, sort_order, is_active
				  FROM dictionaries
				  WHERE category = $1
				  ORDER BY sort_order ASC`
		return s.queryDictionaryEntries(ctx, op, query, category)
	}
	query := `SELECT id, category, name, value, sort_order, is_active
			  FROM dictionaries
			  ORDER BY category ASC, sort_order ASC`
	return s.queryDictionaryEntries(ctx, op, query)
}

func (s *Storage) queryDictionaryEntries(ctx context.Context, op, query string, args ...any) ([]models.DictionaryEntry, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.DictionaryEntry
	for rows.Next() {
		var e models.DictionaryEntry
		if err = rows.Scan(&e.ID, &e.Category, &e.Name, &e.Value,
			&e.SortOrder, &e.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateDictionaryEntry сохраняет новую словарную запись и возвращает её ID.
func (s *Storage) CreateDictionaryEntry(ctx context.Context, entry models.DictionaryEntry) (int, error) {
	const op = "storage.CreateDictionaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO dictionaries (category, name, value, sort_order, is_active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		entry.Category, entry.Name, entry.Value, entry.SortOrder, entry.IsActive).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateDictionaryEntry обновляет словарную запись. Возвращает число изменённых строк.
func (s *Storage) UpdateDictionaryEntry(ctx context.Context, id int, entry models.DictionaryEntry) (int, error) {
	const op = "storage.UpdateDictionaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE dictionaries
			  SET category = $1, name = $2, value = $3, sort_order = $4, is_active = $5
			  WHERE id = $6`
	res, err := s.DB.ExecContext(ctx, query,
		entry.Category, entry.Name, entry.Value, entry.SortOrder, entry.IsActive, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(n), nil
}

// RemoveDictionaryEntry удаляет словарную запись. Возвращает число удалённых строк.
func (s *Storage) RemoveDictionaryEntry(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveDictionaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM dictionaries WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(n), nil
}

// GetDictionaryEntry возвращает словарную запись по ID.
func (s *Storage) GetDictionaryEntry(ctx context.Context, id int) (*models.DictionaryEntry, error) {
	const op = "storage.GetDictionaryEntry"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, category, name, value, sort_order, is_active
			  FROM dictionaries
			  WHERE id = $1`
	var e models.DictionaryEntry
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Category,
		&e.Name, &e.Value, &e.SortOrder, &e.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
