package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora/intake/internal/models"
)

func TestStorage_GetUserByLogin(t *testing.T) {
	type args struct {
		ctx         context.Context
		companyCode string
		username    string
	}

	tests := []struct {
		name     string
		args     args
		wantErr  error
		wantName string
		setup    func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "existing user found by company code and username",
			args: args{
				ctx:         context.Background(),
				companyCode: "01",
				username:    "hongstaff",
			},
			wantName: "홍길동",
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, NewTestUserUID(), "홍길동", "hongstaff", "01", "hashedpassword", "user", true)
			},
		},
		{
			name: "same username in another company is not found",
			args: args{
				ctx:         context.Background(),
				companyCode: "02",
				username:    "hongstaff",
			},
			wantErr: ErrNotFound,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, NewTestUserUID(), "홍길동", "hongstaff", "01", "hashedpassword", "user", true)
			},
		},
		{
			name: "missing user yields ErrNotFound",
			args: args{
				ctx:         context.Background(),
				companyCode: "01",
				username:    "nobody",
			},
			wantErr: ErrNotFound,
			setup:   func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			got, err := storage.GetUserByLogin(tt.args.ctx, tt.args.companyCode, tt.args.username)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, got.Name)
				assert.Equal(t, tt.args.companyCode, got.CompanyCode)
				assert.True(t, got.IsActive)
			}
		})
	}
}

func TestStorage_CreateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verification := NewTestVerification(storage)

	uid, err := storage.CreateUser(context.Background(), models.User{
		Name:         "김영희",
		Email:        "kim@example.com",
		Username:     "kimstaff",
		CompanyCode:  "03",
		Phone:        "01098765432",
		PasswordHash: "hashedpassword",
		Role:         "admin",
		IsActive:     true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, uid)
	verification.VerifyUserExists(t, uid)

	got, err := storage.GetUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "김영희", got.Name)
	assert.Equal(t, "kim@example.com", got.Email)
	assert.Equal(t, "admin", got.Role)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStorage_ToggleUserActive(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := NewTestUserUID()
	factory.CreateUser(t, userUID, "홍길동", "hongstaff", "01", "hashedpassword", "user", true)

	isActive, err := storage.ToggleUserActive(context.Background(), userUID)
	require.NoError(t, err)
	assert.False(t, isActive)

	isActive, err = storage.ToggleUserActive(context.Background(), userUID)
	require.NoError(t, err)
	assert.True(t, isActive)

	_, err = storage.ToggleUserActive(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStorage_UpdateAndRemoveUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verification := NewTestVerification(storage)
	userUID := NewTestUserUID()
	factory.CreateUser(t, userUID, "홍길동", "hongstaff", "01", "hashedpassword", "user", true)

	isActive := false
	n, err := storage.UpdateUser(context.Background(), userUID, models.DummyUserUpdate{
		Name:     "홍길순",
		Email:    "hong@example.com",
		Phone:    "01011112222",
		Role:     "admin",
		IsActive: &isActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := storage.GetUser(context.Background(), userUID)
	require.NoError(t, err)
	assert.Equal(t, "홍길순", got.Name)
	assert.Equal(t, "admin", got.Role)
	assert.False(t, got.IsActive)

	n, err = storage.RemoveUser(context.Background(), userUID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	verification.VerifyUserDeleted(t, userUID)

	n, err = storage.RemoveUser(context.Background(), userUID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStorage_ListUsers(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, NewTestUserUID(), "홍길동", "hongstaff", "01", "hashedpassword", "user", true)
	factory.CreateUser(t, NewTestUserUID(), "김영희", "kimstaff", "02", "hashedpassword", "admin", false)

	got, err := storage.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStorage_ListActiveDictionaryEntries(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateDictionaryEntry(t, "SERVICE_TYPE", "인터넷+TV", "INTERNET_TV", 2, true)
	factory.CreateDictionaryEntry(t, "SERVICE_TYPE", "인터넷", "INTERNET", 1, true)
	factory.CreateDictionaryEntry(t, "SERVICE_TYPE", "전화", "PHONE", 3, false)

	got, err := storage.ListActiveDictionaryEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Неактивные записи исключаются, порядок по sort_order
	assert.Equal(t, "INTERNET", got[0].Value)
	assert.Equal(t, "INTERNET_TV", got[1].Value)
}

func TestStorage_ListDictionaryEntries(t *testing.T) {
	type args struct {
		ctx      context.Context
		category string
	}

	tests := []struct {
		name      string
		args      args
		wantCount int
		setup     func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "filter by category returns only that category",
			args: args{
				ctx:      context.Background(),
				category: "SERVICE_TYPE",
			},
			wantCount: 2,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateDictionaryEntry(t, "SERVICE_TYPE", "인터넷", "INTERNET", 1, true)
				factory.CreateDictionaryEntry(t, "SERVICE_TYPE", "전화", "PHONE", 2, false)
				factory.CreateDictionaryEntry(t, "PLAN_NAME", "500M", "PLAN_500M", 1, true)
			},
		},
		{
			name: "empty category returns everything including inactive",
			args: args{
				ctx:      context.Background(),
				category: "",
			},
			wantCount: 3,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateDictionaryEntry(t, "SERVICE_TYPE", "인터넷", "INTERNET", 1, true)
				factory.CreateDictionaryEntry(t, "SERVICE_TYPE", "전화", "PHONE", 2, false)
				factory.CreateDictionaryEntry(t, "PLAN_NAME", "500M", "PLAN_500M", 1, true)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			got, err := storage.ListDictionaryEntries(tt.args.ctx, tt.args.category)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestStorage_DictionaryEntryLifecycle(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verification := NewTestVerification(storage)

	id, err := storage.CreateDictionaryEntry(context.Background(), models.DictionaryEntry{
		Category:  "AUTH_METHOD",
		Name:      "휴대폰 인증",
		Value:     "SMS",
		SortOrder: 1,
		IsActive:  true,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	n, err := storage.UpdateDictionaryEntry(context.Background(), id, models.DictionaryEntry{
		Category:  "AUTH_METHOD",
		Name:      "문자 인증",
		Value:     "SMS",
		SortOrder: 2,
		IsActive:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := storage.GetDictionaryEntry(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "문자 인증", got.Name)
	assert.Equal(t, 2, got.SortOrder)
	assert.False(t, got.IsActive)

	n, err = storage.RemoveDictionaryEntry(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	verification.VerifyDictionaryEntryDeleted(t, id)

	_, err = storage.GetDictionaryEntry(context.Background(), id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStorage_CreateWiredForm(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verification := NewTestVerification(storage)
	authorUID := NewTestUserUID()
	factory.CreateUser(t, authorUID, "직원", "staff1", "01", "hashedpassword", "user", true)

	formUID := uuid.New().String()
	gotUID, err := storage.CreateWiredForm(context.Background(), models.WiredForm{
		UID:            formUID,
		AuthorUID:      authorUID,
		Name:           "홍길동",
		Phone:          "01012345678",
		BirthDate:      time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		Address:        "서울특별시 강남구 테헤란로 123",
		ZipCode:        "06234",
		PaymentMethod:  models.PaymentMethodAccount,
		AccountInfo:    "국민은행 123-456-789",
		ServiceType:    "INTERNET",
		PlanName:       "PLAN_500M",
		ContractPeriod: "3Y",
		Status:         models.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, formUID, gotUID)
	verification.VerifyWiredFormExists(t, formUID)
}

func TestStorage_ListWiredForms(t *testing.T) {
	type args struct {
		ctx    context.Context
		limit  int
		offset int
	}

	tests := []struct {
		name      string
		args      args
		wantCount int
		setup     func(t *testing.T, factory *TestDataFactory, authorUID string)
	}{
		{
			name: "only forms by the requested author",
			args: args{
				ctx:    context.Background(),
				limit:  10,
				offset: 0,
			},
			wantCount: 2,
			setup: func(t *testing.T, factory *TestDataFactory, authorUID string) {
				otherUID := NewTestUserUID()
				factory.CreateUser(t, otherUID, "타인", "staff2", "01", "hashedpassword", "user", true)
				now := time.Now().UTC()
				factory.CreateWiredForm(t, uuid.New().String(), authorUID, "신청자1", now.Add(-2*time.Hour))
				factory.CreateWiredForm(t, uuid.New().String(), authorUID, "신청자2", now.Add(-1*time.Hour))
				factory.CreateWiredForm(t, uuid.New().String(), otherUID, "신청자3", now)
			},
		},
		{
			name: "pagination respects limit and offset",
			args: args{
				ctx:    context.Background(),
				limit:  2,
				offset: 1,
			},
			wantCount: 2,
			setup: func(t *testing.T, factory *TestDataFactory, authorUID string) {
				now := time.Now().UTC()
				for i := range 3 {
					factory.CreateWiredForm(t, uuid.New().String(), authorUID, "신청자"+strconv.Itoa(i+1),
						now.Add(time.Duration(-i)*time.Hour))
				}
			},
		},
		{
			name: "no forms for author",
			args: args{
				ctx:    context.Background(),
				limit:  10,
				offset: 0,
			},
			wantCount: 0,
			setup:     func(_ *testing.T, _ *TestDataFactory, _ string) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			authorUID := NewTestUserUID()
			factory.CreateUser(t, authorUID, "직원", "staff1", "01", "hashedpassword", "user", true)
			tt.setup(t, factory, authorUID)

			got, err := storage.ListWiredForms(tt.args.ctx, authorUID, tt.args.limit, tt.args.offset)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)

			// Новые анкеты идут первыми
			for i := 1; i < len(got); i++ {
				assert.False(t, got[i-1].CreatedAt.Before(got[i].CreatedAt))
				assert.Equal(t, authorUID, got[i].AuthorUID)
			}
		})
	}
}

func TestStorage_CreateAndListWirelessForms(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verification := NewTestVerification(storage)
	authorUID := NewTestUserUID()
	factory.CreateUser(t, authorUID, "직원", "staff1", "01", "hashedpassword", "user", true)

	formUID := uuid.New().String()
	gotUID, err := storage.CreateWirelessForm(context.Background(), models.WirelessForm{
		UID:            formUID,
		AuthorUID:      authorUID,
		Name:           "김영희",
		Phone:          "01098765432",
		BirthDate:      time.Date(1985, 11, 2, 0, 0, 0, 0, time.UTC),
		Address:        "부산광역시 해운대구 센텀로 45",
		ZipCode:        "48058",
		AuthMethod:     "SMS",
		AuthValue:      "01098765432",
		SimPurchase:    "NEW_SIM",
		PlanName:       "PLAN_5G",
		ContractPeriod: "2Y",
		Status:         models.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, formUID, gotUID)
	verification.VerifyWirelessFormExists(t, formUID)

	got, err := storage.ListWirelessForms(context.Background(), authorUID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "김영희", got[0].Name)
	assert.Equal(t, "SMS", got[0].AuthMethod)
	assert.Equal(t, models.StatusPending, got[0].Status)
}

func TestStorage_AuditLog(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	actorUID := NewTestUserUID()
	now := time.Now().UTC().Truncate(time.Second)

	id, err := storage.CreateAuditRecord(context.Background(), models.AuditEvent{
		ActorUID:   actorUID,
		ActorName:  "관리자",
		Action:     "created",
		EntityType: "dictionary",
		EntityID:   "42",
		OccurredAt: now,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	factory.CreateAuditRecord(t, actorUID, "관리자", "deleted", "user", uuid.New().String(), now.Add(time.Minute))

	got, err := storage.ListAuditRecords(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Новые записи идут первыми
	assert.Equal(t, "deleted", got[0].Action)
	assert.Equal(t, "created", got[1].Action)
	assert.Equal(t, "42", got[1].EntityID)
	assert.Equal(t, now, got[1].OccurredAt.UTC())

	got, err = storage.ListAuditRecords(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "created", got[0].Action)
}
