// Package auth содержит бизнес-логику аутентификации: вход по коду
// организации, имени пользователя и паролю, проверку и отзыв токенов.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/memora/intake/internal/lib/jwt"
	"github.com/memora/intake/internal/lib/password"
	"github.com/memora/intake/internal/models"
	"github.com/memora/intake/internal/storage/repository"
)

// Ошибки аутентификации. Учётные данные и существование пользователя
// не различаются в ответе, чтобы не раскрывать состав учётных записей.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrTokenRevoked       = errors.New("token revoked")
)

// UserRepository описывает контракт для чтения пользователей.
type UserRepository interface {
	// GetUserByLogin возвращает пользователя по коду организации и имени.
	GetUserByLogin(ctx context.Context, companyCode, username string) (*models.User, error)
}

// TokenDenylist хранит отозванные токены до их естественного истечения.
type TokenDenylist interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Service отвечает за вход, проверку и отзыв токенов.
type Service struct {
	users    UserRepository
	denylist TokenDenylist
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, denylist TokenDenylist, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		denylist: denylist,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет учётные данные и выдаёт JWT. Авторизация атомарна:
// либо возвращаются токен и пользователь, либо ошибка без побочных эффектов.
func (s *Service) Login(ctx context.Context, companyCode, username, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByLogin(ctx, companyCode, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrUserInactive
	}

	token, err := s.jwtMaker.GenerateToken(user.Username, user.Role, user.CompanyCode, user.UID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken проверяет подпись, срок действия и денлист токена,
// возвращая данные пользователя из claims.
func (s *Service) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.denylist.Exists(ctx, denylistKey(token))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	user := &models.User{
		Username:    claims.Username,
		Role:        claims.Role,
		CompanyCode: claims.CompanyCode,
		UID:         claims.UserUID,
	}
	return user, nil
}

// Logout отзывает токен, помещая его в денлист до естественного истечения.
// Отзыв уже истёкшего или некорректного токена ошибкой не считается.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Set(ctx, denylistKey(token), true, ttl); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	return nil
}

func denylistKey(token string) string {
	return "denylist:" + token
}
