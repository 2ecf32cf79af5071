package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/location_sharing_system/internal/auth"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService — вспомогательная функция для создания сервиса аутентификации с моками.
func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository, *auth.TokenManager) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAuthService(usersMock, tokens, logger)
	return service, usersMock, tokens
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, usersMock, tokens := newTestAuthService(t)
	ctx := context.Background()
	created := &models.User{ID: 1, Email: "alice@example.com"}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil).Times(1)
	usersMock.EXPECT().
		Create(ctx, "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hash string) (*models.User, error) {
			// Пароль хранится только как bcrypt-хэш
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
			return created, nil
		}).
		Times(1)

	// Действие
	user, token, err := service.Register(ctx, "alice@example.com", "secret123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, created, user)

	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{ID: 1, Email: "alice@example.com"}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, "alice@example.com").Return(existing, nil).Times(1)

	// Действие
	_, _, err := service.Register(ctx, "alice@example.com", "secret123")

	// Проверки
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 1, Email: "alice@example.com", PasswordHash: string(hash)}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil).Times(1)

	// Действие
	got, token, err := service.Login(ctx, "alice@example.com", "secret123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.NotEmpty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil).Times(1)

	// Действие
	_, _, err := service.Login(ctx, "ghost@example.com", "whatever")

	// Проверки: неизвестный email неотличим от неверного пароля
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 1, Email: "alice@example.com", PasswordHash: string(hash)}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil).Times(1)

	// Действие
	_, _, err = service.Login(ctx, "alice@example.com", "wrong-password")

	// Проверки
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
