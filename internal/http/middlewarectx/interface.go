package middlewarectx

import (
	"context"

	"github.com/memora/intake/internal/models"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}
