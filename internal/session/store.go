// Package session реализует клиентское хранилище сессии: конечный автомат
// {loading, anonymous, authenticated} с восстановлением сохранённой
// идентичности при запуске, входом и выходом. Используется Go-клиентами
// сервиса; сервер хранит состояние только в виде выданных токенов.
package session

import (
	"context"
	"sync"

	"github.com/memora/intake/internal/models"
)

// State — состояние сессии.
type State int

const (
	// StateLoading — начальное состояние до завершения восстановления.
	StateLoading State = iota
	// StateAnonymous — аутентифицированного пользователя нет.
	StateAnonymous
	// StateAuthenticated — в сессии есть пользователь.
	StateAuthenticated
)

// Identity — сохраняемая между запусками идентичность: токен и копия
// данных пользователя.
type Identity struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Keeper отвечает за долговременное хранение идентичности.
// Load возвращает (nil, nil), если сохранённой идентичности нет,
// и ошибку, если сохранённое значение повреждено.
type Keeper interface {
	Load() (*Identity, error)
	Save(Identity) error
	Clear() error
}

// Authenticator описывает серверные операции аутентификации,
// которыми пользуется сессия.
type Authenticator interface {
	Login(ctx context.Context, companyCode, username, password string) (string, *models.User, error)
	ValidateToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

// Store — хранилище сессии. Единственный владелец состояния; все переходы
// атомарны: частично-аутентифицированного состояния не бывает.
type Store struct {
	auth   Authenticator
	keeper Keeper

	mu    sync.Mutex
	state State
	user  *models.User
	token string
}

// New создаёт Store в состоянии StateLoading.
func New(auth Authenticator, keeper Keeper) *Store {
	return &Store{
		auth:   auth,
		keeper: keeper,
		state:  StateLoading,
	}
}

// Restore пытается восстановить сохранённую идентичность. Отсутствие
// идентичности не ошибка: сессия становится анонимной. Повреждённое или
// невалидное сохранённое значение очищается и также даёт анонимную сессию.
// Повторный вызов безопасен.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.keeper.Load()
	if err != nil {
		// Повреждённое значение: очищаем и считаем, что его не было.
		_ = s.keeper.Clear()
		s.toAnonymousLocked()
		return nil
	}
	if identity == nil {
		s.toAnonymousLocked()
		return nil
	}

	user, err := s.auth.ValidateToken(ctx, identity.Token)
	if err != nil {
		_ = s.keeper.Clear()
		s.toAnonymousLocked()
		return nil
	}

	s.state = StateAuthenticated
	s.user = user
	s.token = identity.Token
	return nil
}

// Login выполняет вход. При успехе сессия становится аутентифицированной
// и идентичность сохраняется; при неудаче состояние не меняется.
func (s *Store) Login(ctx context.Context, companyCode, username, password string) error {
	token, user, err := s.auth.Login(ctx, companyCode, username, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
	s.token = token

	return s.keeper.Save(Identity{Token: token, User: *user})
}

// Logout завершает сессию: отзывает токен, очищает сохранённую идентичность
// и переводит сессию в анонимное состояние. Переход к неаутентифицированному
// представлению — забота вызывающей стороны.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.toAnonymousLocked()
	s.mu.Unlock()

	if token != "" {
		if err := s.auth.Logout(ctx, token); err != nil {
			return err
		}
	}
	return s.keeper.Clear()
}

// State возвращает текущее состояние сессии.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User возвращает копию пользователя текущей сессии или nil.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token возвращает токен текущей сессии или пустую строку.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) toAnonymousLocked() {
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
}
