// Package dictionary содержит бизнес-логику словарных записей: выдачу
// активных записей, сгруппированных по категориям, и административные
// операции с инвалидацией кэша и публикацией событий аудита.
package dictionary

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

const (
	groupedCacheKey = "dictionary:grouped"
	groupedCacheTTL = time.Hour
)

// Repository описывает контракт хранилища словарных записей.
type Repository interface {
	ListActiveDictionaryEntries(ctx context.Context) ([]models.DictionaryEntry, error)
	ListDictionaryEntries(ctx context.Context, category string) ([]models.DictionaryEntry, error)
	GetDictionaryEntry(ctx context.Context, id int) (*models.DictionaryEntry, error)
	CreateDictionaryEntry(ctx context.Context, entry models.DictionaryEntry) (int, error)
	UpdateDictionaryEntry(ctx context.Context, id int, entry models.DictionaryEntry) (int, error)
	RemoveDictionaryEntry(ctx context.Context, id int) (int, error)
}

// Cache описывает используемую часть кэша.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// AuditPublisher публикует события аудита административных операций.
type AuditPublisher interface {
	Publish(event models.AuditEvent) error
}

// Service реализует бизнес-логику словарей.
type Service struct {
	repo  Repository
	cache Cache
	audit AuditPublisher
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, audit AuditPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		audit: audit,
		log:   log,
	}
}

// GroupedActive возвращает активные словарные записи, сгруппированные
// по категории. Порядок внутри группы — по sort_order по возрастанию.
// Неактивные записи в результат не попадают.
func (s *Service) GroupedActive(ctx context.Context) (map[string][]models.DictionaryEntry, error) {
	var cached map[string][]models.DictionaryEntry
	found, err := s.cache.Get(ctx, groupedCacheKey, &cached)
	if err != nil {
		// Кэш необязателен: при его недоступности читаем из базы.
		s.log.Warn("dictionary cache read failed", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	entries, err := s.repo.ListActiveDictionaryEntries(ctx)
	if err != nil {
		return nil, err
	}

	grouped := GroupByCategory(entries)
	if err := s.cache.Set(ctx, groupedCacheKey, grouped, groupedCacheTTL); err != nil {
		s.log.Warn("dictionary cache write failed", sl.Err(err))
	}
	return grouped, nil
}

// GroupByCategory группирует записи по категории, сохраняя исходный порядок
// внутри каждой группы.
func GroupByCategory(entries []models.DictionaryEntry) map[string][]models.DictionaryEntry {
	grouped := make(map[string][]models.DictionaryEntry)
	for _, e := range entries {
		grouped[e.Category] = append(grouped[e.Category], e)
	}
	return grouped
}

// List возвращает все словарные записи, опционально по одной категории.
func (s *Service) List(ctx context.Context, category string) ([]models.DictionaryEntry, error) {
	return s.repo.ListDictionaryEntries(ctx, category)
}

// Create создаёт словарную запись, сбрасывает кэш и публикует событие аудита.
func (s *Service) Create(ctx context.Context, actor *models.User, req models.DummyDictionaryEntry) (int, error) {
	entry := models.DictionaryEntry{
		Category:  req.Category,
		Name:      req.Name,
		Value:     req.Value,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	id, err := s.repo.CreateDictionaryEntry(ctx, entry)
	if err != nil {
		return 0, err
	}
	s.afterMutation(ctx, actor, "created", id)
	return id, nil
}

// Update обновляет словарную запись, сбрасывает кэш и публикует событие аудита.
func (s *Service) Update(ctx context.Context, actor *models.User, id int, req models.DummyDictionaryEntry) (int, error) {
	entry := models.DictionaryEntry{
		Category:  req.Category,
		Name:      req.Name,
		Value:     req.Value,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	n, err := s.repo.UpdateDictionaryEntry(ctx, id, entry)
	if err != nil {
		return 0, err
	}
	s.afterMutation(ctx, actor, "updated", id)
	return n, nil
}

// Remove удаляет словарную запись, сбрасывает кэш и публикует событие аудита.
func (s *Service) Remove(ctx context.Context, actor *models.User, id int) (int, error) {
	n, err := s.repo.RemoveDictionaryEntry(ctx, id)
	if err != nil {
		return 0, err
	}
	s.afterMutation(ctx, actor, "deleted", id)
	return n, nil
}

func (s *Service) afterMutation(ctx context.Context, actor *models.User, action string, id int) {
	if err := s.cache.Invalidate(ctx, groupedCacheKey); err != nil {
		s.log.Warn("dictionary cache invalidate failed", sl.Err(err))
	}
	event := models.AuditEvent{
		ActorUID:   actor.UID,
		ActorName:  actor.Name,
		Action:     action,
		EntityType: "dictionary",
		EntityID:   strconv.Itoa(id),
	}
	if err := s.audit.Publish(event); err != nil {
		// Аудит не должен ломать основную операцию.
		s.log.Warn("failed to publish audit event", sl.Err(err))
	}
}
