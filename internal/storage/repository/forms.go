package repository

import (
	"context"
	"fmt"

	"github.com/memora/intake/internal/models"
)

// CreateWiredForm сохраняет анкету проводного подключения.
func (s *Storage) CreateWiredForm(ctx context.Context, form models.WiredForm) (string, error) {
	const op = "storage.CreateWiredForm"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO wired_forms (uid, author_uid, name, phone, birth_date,
			      address, detail_address, zip_code, payment_method, account_info,
			      card_info, service_type, plan_name, contract_period, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			  RETURNING uid;`
	var newUID string
	if err := s.DB.QueryRowContext(ctx, query,
		form.UID, form.AuthorUID, form.Name, form.Phone, form.BirthDate,
		form.Address, form.DetailAddress, form.ZipCode, form.PaymentMethod,
		form.AccountInfo, form.CardInfo, form.ServiceType, form.PlanName,
		form.ContractPeriod, form.Status).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListWiredForms возвращает анкеты проводного подключения, принятые
// пользователем, новые первыми.
func (s *Storage) ListWiredForms(ctx context.Context, authorUID string, limit, offset int) ([]*models.WiredForm, error) {
	const op = "storage.ListWiredForms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, author_uid, name, phone, birth_date, address,
			      detail_address, zip_code, payment_method, account_info, card_info,
			      service_type, plan_name, contract_period, status, created_at
			  FROM wired_forms
			  WHERE author_uid = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, authorUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.WiredForm
	for rows.Next() {
		var f models.WiredForm
		if err = rows.Scan(&f.UID, &f.AuthorUID, &f.Name, &f.Phone, &f.BirthDate,
			&f.Address, &f.DetailAddress, &f.ZipCode, &f.PaymentMethod,
			&f.AccountInfo, &f.CardInfo, &f.ServiceType, &f.PlanName,
			&f.ContractPeriod, &f.Status, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateWirelessForm сохраняет анкету беспроводного подключения.
func (s *Storage) CreateWirelessForm(ctx context.Context, form models.WirelessForm) (string, error) {
	const op = "storage.CreateWirelessForm"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO wireless_forms (uid, author_uid, name, phone, birth_date,
			      address, detail_address, zip_code, auth_method, auth_value,
			      sim_purchase, plan_name, contract_period, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING uid;`
	var newUID string
	if err := s.DB.QueryRowContext(ctx, query,
		form.UID, form.AuthorUID, form.Name, form.Phone, form.BirthDate,
		form.Address, form.DetailAddress, form.ZipCode, form.AuthMethod,
		form.AuthValue, form.SimPurchase, form.PlanName, form.ContractPeriod,
		form.Status).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListWirelessForms возвращает анкеты беспроводного подключения, принятые
// пользователем, новые первыми.
func (s *Storage) ListWirelessForms(ctx context.Context, authorUID string, limit, offset int) ([]*models.WirelessForm, error) {
	const op = "storage.ListWirelessForms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, author_uid, name, phone, birth_date, address,
			      detail_address, zip_code, auth_method, auth_value, sim_purchase,
			      plan_name, contract_period, status, created_at
			  FROM wireless_forms
			  WHERE author_uid = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, authorUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.WirelessForm
	for rows.Next() {
		var f models.WirelessForm
		if err = rows.Scan(&f.UID, &f.AuthorUID, &f.Name, &f.Phone, &f.BirthDate,
			&f.Address, &f.DetailAddress, &f.ZipCode, &f.AuthMethod, &f.AuthValue,
			&f.SimPurchase, &f.PlanName, &f.ContractPeriod, &f.Status,
			&f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
