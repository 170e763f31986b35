package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

// Repository описывает контракт журнала аудита в базе данных.
type Repository interface {
	CreateAuditRecord(ctx context.Context, event models.AuditEvent) (int, error)
	ListAuditRecords(ctx context.Context, limit, offset int) ([]*models.AuditRecord, error)
}

// Service записывает потреблённые события аудита и отдаёт журнал.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создаёт новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// SaveEvent обрабатывает тело сообщения из очереди аудита.
// Используется как обработчик потребителя RabbitMQ.
func (s *Service) SaveEvent(body []byte) error {
	var event models.AuditEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal audit event", sl.Err(err))
		return fmt.Errorf("error unmarshalling audit event: %w", err)
	}

	id, err := s.repo.CreateAuditRecord(context.Background(), event)
	if err != nil {
		s.log.Error("failed to save audit event", sl.Err(err))
		return err
	}
	s.log.Info("audit event saved",
		slog.Int("id", id),
		slog.String("action", event.Action),
		slog.String("entity_type", event.EntityType))
	return nil
}

// List возвращает строки журнала аудита, новые первыми.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.AuditRecord, error) {
	return s.repo.ListAuditRecords(ctx, limit, offset)
}
