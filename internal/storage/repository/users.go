package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/memora/intake/internal/models"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует.
var ErrNotFound = errors.New("not found")

// CreateUser сохраняет нового пользователя и возвращает его UID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (name, email, username, company_code, phone,
			      password_hash, role, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Username, user.CompanyCode, user.Phone,
		user.PasswordHash, user.Role, user.IsActive).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByLogin возвращает пользователя по коду организации и имени.
func (s *Storage) GetUserByLogin(ctx context.Context, companyCode, username string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, email, username, company_code, phone,
			      password_hash, role, is_active, created_at
			  FROM users
			  WHERE company_code = $1 AND username = $2`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, companyCode, username), op)
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, email, username, company_code, phone,
			      password_hash, role, is_active, created_at
			  FROM users
			  WHERE uid = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, userUID), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var email, phone sql.NullString
	if err := row.Scan(&u.UID, &u.Name, &email, &u.Username, &u.CompanyCode,
		&phone, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Email = email.String
	u.Phone = phone.String
	return u, nil
}

// ListUsers возвращает всех пользователей, новые первыми.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, email, username, company_code, phone,
			      password_hash, role, is_active, created_at
			  FROM users
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u := models.User{}
		var email, phone sql.NullString
		if err = rows.Scan(&u.UID, &u.Name, &email, &u.Username, &u.CompanyCode,
			&phone, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		u.Email = email.String
		u.Phone = phone.String
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUser обновляет данные пользователя. Возвращает число изменённых строк.
func (s *Storage) UpdateUser(ctx context.Context, userUID string, upd models.DummyUserUpdate) (int, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = $1, email = $2, phone = $3, role = $4, is_active = $5
			  WHERE uid = $6`
	res, err := s.DB.ExecContext(ctx, query,
		upd.Name, upd.Email, upd.Phone, upd.Role, *upd.IsActive, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(n), nil
}

// ToggleUserActive переключает признак активности пользователя
// и возвращает новое значение.
func (s *Storage) ToggleUserActive(ctx context.Context, userUID string) (bool, error) {
	const op = "storage.ToggleUserActive"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET is_active = NOT is_active
			  WHERE uid = $1
			  RETURNING is_active`
	var isActive bool
	if err := s.DB.QueryRowContext(ctx, query, userUID).Scan(&isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return isActive, nil
}

// RemoveUser удаляет пользователя. Возвращает число удалённых строк.
func (s *Storage) RemoveUser(ctx context.Context, userUID string) (int, error) {
	const op = "storage.RemoveUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE uid = $1`, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(n), nil
}
