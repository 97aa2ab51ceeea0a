package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/magabrotheeeer/coach-connect/internal/lib/jwt"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

type StoreMock struct{ mock.Mock }

func (m *StoreMock) SetCurrentUser(user *models.CurrentUser) {
	m.Called(user)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestService(storeMock *StoreMock) *Service {
	maker := jwtlib.NewJWTMaker("test-secret", time.Hour)
	return New(storeMock, maker, newNoopLogger())
}

func TestRegister(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("SetCurrentUser", mock.AnythingOfType("*models.CurrentUser")).Once()
	service := newTestService(storeMock)

	req := models.DummyRegister{
		Role:     models.RoleClient,
		FullName: "New Client",
		Email:    "client@test.local",
		Password: "secret123",
	}

	token, user, err := service.Register(req)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleClient, user.Role)
	storeMock.AssertExpectations(t)

	// токен содержит идентификатор и роль нового пользователя
	maker := jwtlib.NewJWTMaker("test-secret", time.Hour)
	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleClient, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("SetCurrentUser", mock.Anything).Once()
	service := newTestService(storeMock)

	req := models.DummyRegister{
		Role:     models.RoleClient,
		FullName: "New Client",
		Email:    "client@test.local",
		Password: "secret123",
	}
	_, _, err := service.Register(req)
	require.NoError(t, err)

	_, _, err = service.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
	storeMock.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "успешный вход демо-клиента",
			email:    "demo@coachconnect.app",
			password: "demo-password",
			wantErr:  nil,
		},
		{
			name:     "неверный пароль",
			email:    "demo@coachconnect.app",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "неизвестная почта",
			email:    "ghost@test.local",
			password: "demo-password",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeMock := new(StoreMock)
			if tt.wantErr == nil {
				storeMock.On("SetCurrentUser", mock.AnythingOfType("*models.CurrentUser")).Once()
			}
			service := newTestService(storeMock)

			token, user, err := service.Login(models.DummyLogin{
				Email:    tt.email,
				Password: tt.password,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token, "no token on failed login")
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, "demo_client", user.ID)
			storeMock.AssertExpectations(t)
		})
	}
}

func TestLogout(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("SetCurrentUser", (*models.CurrentUser)(nil)).Once()
	service := newTestService(storeMock)

	service.Logout()

	storeMock.AssertExpectations(t)
}
