// Package forms содержит бизнес-логику приёма анкет подключения услуг:
// условные проверки полей, нормализацию даты рождения и сохранение анкеты
// со статусом PENDING.
package forms

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

// Условные проверки, которые невозможно выразить тегами валидатора.
// Тексты совпадают с сообщениями полей анкеты.
var (
	ErrAccountInfoRequired = errors.New("계좌정보를 입력해주세요")
	ErrCardInfoRequired    = errors.New("카드정보를 입력해주세요")
	ErrAuthValueRequired   = errors.New("인증값을 입력해주세요")
	ErrBadBirthDate        = errors.New("생년월일 형식이 올바르지 않습니다")
)

// birthDateLayout — формат даты рождения во входном JSON.
const birthDateLayout = "2006-01-02"

// AuthMethodNone — способ аутентификации, не требующий значения.
const AuthMethodNone = "NONE"

// Repository описывает контракт хранилища анкет.
type Repository interface {
	CreateWiredForm(ctx context.Context, form models.WiredForm) (string, error)
	ListWiredForms(ctx context.Context, authorUID string, limit, offset int) ([]*models.WiredForm, error)
	CreateWirelessForm(ctx context.Context, form models.WirelessForm) (string, error)
	ListWirelessForms(ctx context.Context, authorUID string, limit, offset int) ([]*models.WirelessForm, error)
}

// AuditPublisher публикует события аудита приёма анкет.
type AuditPublisher interface {
	Publish(event models.AuditEvent) error
}

// Service реализует бизнес-логику приёма анкет.
type Service struct {
	repo  Repository
	audit AuditPublisher
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, audit AuditPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// CreateWired принимает анкету проводного подключения: проверяет условные
// поля способа оплаты, нормализует дату рождения и сохраняет анкету
// со статусом PENDING от имени принявшего сотрудника.
func (s *Service) CreateWired(ctx context.Context, author *models.User, req models.DummyWiredForm) (string, error) {
	switch req.PaymentMethod {
	case models.PaymentMethodAccount:
		if req.AccountInfo == "" {
			return "", ErrAccountInfoRequired
		}
	case models.PaymentMethodCard:
		if req.CardInfo == "" {
			return "", ErrCardInfoRequired
		}
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return "", err
	}

	form := models.WiredForm{
		UID:            uuid.New().String(),
		AuthorUID:      author.UID,
		Name:           req.Name,
		Phone:          req.Phone,
		BirthDate:      birthDate,
		Address:        req.Address,
		DetailAddress:  req.DetailAddress,
		ZipCode:        req.ZipCode,
		PaymentMethod:  req.PaymentMethod,
		AccountInfo:    req.AccountInfo,
		CardInfo:       req.CardInfo,
		ServiceType:    req.ServiceType,
		PlanName:       req.PlanName,
		ContractPeriod: req.ContractPeriod,
		Status:         models.StatusPending,
	}

	uid, err := s.repo.CreateWiredForm(ctx, form)
	if err != nil {
		return "", err
	}
	s.publish(author, "wired_form", uid)
	return uid, nil
}

// ListWired возвращает анкеты проводного подключения, принятые сотрудником.
func (s *Service) ListWired(ctx context.Context, authorUID string, limit, offset int) ([]*models.WiredForm, error) {
	return s.repo.ListWiredForms(ctx, authorUID, limit, offset)
}

// CreateWireless принимает анкету беспроводного подключения: значение
// аутентификации обязательно для всех способов, кроме NONE.
func (s *Service) CreateWireless(ctx context.Context, author *models.User, req models.DummyWirelessForm) (string, error) {
	if req.AuthMethod != AuthMethodNone && req.AuthValue == "" {
		return "", ErrAuthValueRequired
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return "", err
	}

	form := models.WirelessForm{
		UID:            uuid.New().String(),
		AuthorUID:      author.UID,
		Name:           req.Name,
		Phone:          req.Phone,
		BirthDate:      birthDate,
		Address:        req.Address,
		DetailAddress:  req.DetailAddress,
		ZipCode:        req.ZipCode,
		AuthMethod:     req.AuthMethod,
		AuthValue:      req.AuthValue,
		SimPurchase:    req.SimPurchase,
		PlanName:       req.PlanName,
		ContractPeriod: req.ContractPeriod,
		Status:         models.StatusPending,
	}

	uid, err := s.repo.CreateWirelessForm(ctx, form)
	if err != nil {
		return "", err
	}
	s.publish(author, "wireless_form", uid)
	return uid, nil
}

// ListWireless возвращает анкеты беспроводного подключения, принятые сотрудником.
func (s *Service) ListWireless(ctx context.Context, authorUID string, limit, offset int) ([]*models.WirelessForm, error) {
	return s.repo.ListWirelessForms(ctx, authorUID, limit, offset)
}

// IsValidationError сообщает, относится ли ошибка к условным проверкам анкеты.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrAccountInfoRequired) ||
		errors.Is(err, ErrCardInfoRequired) ||
		errors.Is(err, ErrAuthValueRequired) ||
		errors.Is(err, ErrBadBirthDate)
}

func parseBirthDate(raw string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrBadBirthDate
	}
	return t.UTC(), nil
}

func (s *Service) publish(author *models.User, entityType, uid string) {
	event := models.AuditEvent{
		ActorUID:   author.UID,
		ActorName:  author.Name,
		Action:     "submitted",
		EntityType: entityType,
		EntityID:   uid,
	}
	if err := s.audit.Publish(event); err != nil {
		s.log.Warn("failed to publish audit event", sl.Err(err))
	}
}
