// Package user содержит бизнес-логику административного управления
// учётными записями: создание, список, редактирование, переключение
// активности и удаление с публикацией событий аудита.
package user

import (
	"context"
	"log/slog"

	"github.com/memora/intake/internal/lib/password"
	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

// Repository описывает контракт хранилища пользователей.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, userUID string, upd models.DummyUserUpdate) (int, error)
	ToggleUserActive(ctx context.Context, userUID string) (bool, error)
	RemoveUser(ctx context.Context, userUID string) (int, error)
}

// AuditPublisher публикует события аудита административных операций.
type AuditPublisher interface {
	Publish(event models.AuditEvent) error
}

// Service реализует бизнес-логику управления пользователями.
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

// Create создаёт пользователя с хэшированием пароля. Новые учётные записи
// активны сразу.
func (s *Service) Create(ctx context.Context, actor *models.User, req models.DummyUser) (string, error) {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", err
	}
	newUser := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		CompanyCode:  req.CompanyCode,
		Phone:        req.Phone,
		PasswordHash: hashed,
		Role:         req.Role,
		IsActive:     true,
	}

	uid, err := s.repo.CreateUser(ctx, newUser)
	if err != nil {
		return "", err
	}
	s.publish(actor, "created", uid)
	return uid, nil
}

// List возвращает всех пользователей, новые первыми.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Update обновляет данные пользователя.
func (s *Service) Update(ctx context.Context, actor *models.User, userUID string, req models.DummyUserUpdate) (int, error) {
	n, err := s.repo.UpdateUser(ctx, userUID, req)
	if err != nil {
		return 0, err
	}
	s.publish(actor, "updated", userUID)
	return n, nil
}

// ToggleActive переключает признак активности учётной записи
// и возвращает новое значение.
func (s *Service) ToggleActive(ctx context.Context, actor *models.User, userUID string) (bool, error) {
	isActive, err := s.repo.ToggleUserActive(ctx, userUID)
	if err != nil {
		return false, err
	}
	s.publish(actor, "toggled", userUID)
	return isActive, nil
}

// Remove удаляет пользователя.
func (s *Service) Remove(ctx context.Context, actor *models.User, userUID string) (int, error) {
	n, err := s.repo.RemoveUser(ctx, userUID)
	if err != nil {
		return 0, err
	}
	s.publish(actor, "deleted", userUID)
	return n, nil
}

func (s *Service) publish(actor *models.User, action, entityID string) {
	event := models.AuditEvent{
		ActorUID:   actor.UID,
		ActorName:  actor.Name,
		Action:     action,
		EntityType: "user",
		EntityID:   entityID,
	}
	if err := s.audit.Publish(event); err != nil {
		s.log.Warn("failed to publish audit event", sl.Err(err))
	}
}
