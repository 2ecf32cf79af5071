package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestChatService — вспомогательная функция для создания сервиса чатов с моками.
func newTestChatService(t *testing.T) (ChatService, *mocks.MockChatRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockChatRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewChatService(repoMock, logger)
	return service, repoMock
}

func TestCreateChat_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestChatService(t)
	ctx := context.Background()
	chat := &models.Chat{Title: "Central Park", Latitude: 40.78, Longitude: -73.96}

	// Ожидания
	repoMock.EXPECT().CreateChat(ctx, chat).Return(nil).Times(1)

	// Действие и проверки
	require.NoError(t, service.CreateChat(ctx, chat))
}

func TestAddComment_ChatNotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestChatService(t)
	ctx := context.Background()
	comment := &models.Comment{ChatID: 42, UserID: 1, Content: "hello"}

	// Ожидания
	repoMock.EXPECT().ChatExists(ctx, int64(42)).Return(false, nil).Times(1)

	// Действие и проверки
	require.ErrorIs(t, service.AddComment(ctx, comment), ErrChatNotFound)
}

func TestAddComment_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestChatService(t)
	ctx := context.Background()
	comment := &models.Comment{ChatID: 42, UserID: 1, Content: "hello"}

	// Ожидания
	repoMock.EXPECT().ChatExists(ctx, int64(42)).Return(true, nil).Times(1)
	repoMock.EXPECT().CreateComment(ctx, comment).Return(nil).Times(1)

	// Действие и проверки
	require.NoError(t, service.AddComment(ctx, comment))
}

func TestComments_OrderPreserved(t *testing.T) {
	// Подготовка
	service, repoMock := newTestChatService(t)
	ctx := context.Background()
	expected := []*models.Comment{
		{ID: 1, ChatID: 42, Content: "first"},
		{ID: 2, ChatID: 42, Content: "second"},
	}

	// Ожидания
	repoMock.EXPECT().ChatExists(ctx, int64(42)).Return(true, nil).Times(1)
	repoMock.EXPECT().CommentsByChat(ctx, int64(42)).Return(expected, nil).Times(1)

	// Действие
	comments, err := service.Comments(ctx, 42)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, comments)
}

func TestNearbyChats(t *testing.T) {
	// Подготовка
	service, repoMock := newTestChatService(t)
	ctx := context.Background()
	expected := []*models.Chat{{ID: 1, Title: "Central Park"}}

	// Ожидания
	repoMock.EXPECT().NearbyChats(ctx, 40.78, -73.96, 3000.0).Return(expected, nil).Times(1)

	// Действие
	chats, err := service.NearbyChats(ctx, 40.78, -73.96, 3000)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, chats)
}
