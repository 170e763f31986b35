package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/memora/intake/internal/models"
	authservice "github.com/memora/intake/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, companyCode, username, password string) (string, *models.User, error) {
	args := m.Called(ctx, companyCode, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	user := &models.User{
		UID:         "uid-1",
		Name:        "Test User",
		Username:    "user1",
		CompanyCode: "01",
		Role:        "user",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockUser       *models.User
		mockErr        error
		callExpected   bool
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "valid login",
			requestBody:    Request{CompanyCode: "01", Username: "user1", Password: "password123"},
			mockToken:      "tok",
			mockUser:       user,
			callExpected:   true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "validation error - missing password",
			requestBody:    Request{CompanyCode: "01", Username: "user1"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
			wantStatus:     "Error",
		},
		{
			name:           "validation error - company code not numeric",
			requestBody:    Request{CompanyCode: "ab", Username: "user1", Password: "password123"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field CompanyCode can contain only numbers",
			wantStatus:     "Error",
		},
		{
			name:           "invalid credentials",
			requestBody:    Request{CompanyCode: "01", Username: "user1", Password: "password123"},
			mockErr:        authservice.ErrInvalidCredentials,
			callExpected:   true,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid credentials",
			wantStatus:     "Error",
		},
		{
			name:           "inactive user",
			requestBody:    Request{CompanyCode: "01", Username: "user1", Password: "password123"},
			mockErr:        authservice.ErrUserInactive,
			callExpected:   true,
			wantStatusCode: http.StatusForbidden,
			wantError:      "no permission",
			wantStatus:     "Error",
		},
		{
			name:           "internal error",
			requestBody:    Request{CompanyCode: "01", Username: "user1", Password: "password123"},
			mockErr:        errors.New("db error"),
			callExpected:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "could not login",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.callExpected {
				req := tt.requestBody.(Request)
				serviceMock.On("Login", mock.Anything, req.CompanyCode, req.Username, req.Password).
					Return(tt.mockToken, tt.mockUser, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "tok", data["token"])
				gotUser, ok := data["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "user1", gotUser["username"])
				assert.Equal(t, "01", gotUser["company_code"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
