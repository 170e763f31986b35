package user_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memora/intake/internal/lib/password"
	"github.com/memora/intake/internal/models"
	userservice "github.com/memora/intake/internal/services/user"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *RepoMock) UpdateUser(ctx context.Context, userUID string, upd models.DummyUserUpdate) (int, error) {
	args := m.Called(ctx, userUID, upd)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ToggleUserActive(ctx context.Context, userUID string) (bool, error) {
	args := m.Called(ctx, userUID)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) RemoveUser(ctx context.Context, userUID string) (int, error) {
	args := m.Called(ctx, userUID)
	return args.Int(0), args.Error(1)
}

type AuditMock struct {
	mock.Mock
}

func (m *AuditMock) Publish(event models.AuditEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func actor() *models.User {
	return &models.User{UID: "admin-uid", Name: "관리자", Role: models.RoleAdmin}
}

func TestUserService_Create(t *testing.T) {
	repoMock := new(RepoMock)
	auditMock := new(AuditMock)
	service := userservice.NewService(repoMock, auditMock, newNoopLogger())

	req := models.DummyUser{
		Name:        "홍길동",
		Username:    "hongstaff",
		Password:    "secret123",
		CompanyCode: "01",
		Role:        "user",
	}

	repoMock.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "hongstaff" &&
			u.IsActive &&
			u.PasswordHash != "secret123" &&
			password.CompareHash(u.PasswordHash, "secret123") == nil
	})).Return("new-uid", nil).Once()
	auditMock.On("Publish", mock.MatchedBy(func(e models.AuditEvent) bool {
		return e.Action == "created" && e.EntityType == "user" &&
			e.EntityID == "new-uid" && e.ActorUID == "admin-uid"
	})).Return(nil).Once()

	uid, err := service.Create(context.Background(), actor(), req)
	require.NoError(t, err)
	assert.Equal(t, "new-uid", uid)
	repoMock.AssertExpectations(t)
	auditMock.AssertExpectations(t)
}

func TestUserService_Create_RepoError(t *testing.T) {
	repoMock := new(RepoMock)
	auditMock := new(AuditMock)
	service := userservice.NewService(repoMock, auditMock, newNoopLogger())

	repoMock.On("CreateUser", mock.Anything, mock.Anything).
		Return("", errors.New("duplicate username")).Once()

	_, err := service.Create(context.Background(), actor(), models.DummyUser{
		Name:        "홍길동",
		Username:    "hongstaff",
		Password:    "secret123",
		CompanyCode: "01",
		Role:        "user",
	})
	require.Error(t, err)
	auditMock.AssertNotCalled(t, "Publish")
}

func TestUserService_ToggleActive(t *testing.T) {
	repoMock := new(RepoMock)
	auditMock := new(AuditMock)
	service := userservice.NewService(repoMock, auditMock, newNoopLogger())

	repoMock.On("ToggleUserActive", mock.Anything, "user-uid").Return(false, nil).Once()
	auditMock.On("Publish", mock.MatchedBy(func(e models.AuditEvent) bool {
		return e.Action == "toggled" && e.EntityID == "user-uid"
	})).Return(nil).Once()

	isActive, err := service.ToggleActive(context.Background(), actor(), "user-uid")
	require.NoError(t, err)
	assert.False(t, isActive)
	repoMock.AssertExpectations(t)
	auditMock.AssertExpectations(t)
}

func TestUserService_Remove_AuditFailureIsNonFatal(t *testing.T) {
	repoMock := new(RepoMock)
	auditMock := new(AuditMock)
	service := userservice.NewService(repoMock, auditMock, newNoopLogger())

	repoMock.On("RemoveUser", mock.Anything, "user-uid").Return(1, nil).Once()
	auditMock.On("Publish", mock.Anything).Return(errors.New("broker down")).Once()

	n, err := service.Remove(context.Background(), actor(), "user-uid")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	auditMock.AssertExpectations(t)
}
