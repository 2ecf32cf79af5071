package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service/mocks"
	"github.com/shenikar/location_sharing_system/internal/ws"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLocationService — вспомогательная функция для создания сервиса локаций с моками.
func newTestLocationService(t *testing.T) (LocationService, *mocks.MockUserRepository, *mocks.MockFriendRepository, *mocks.MockBroadcaster) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	friendsMock := mocks.NewMockFriendRepository(ctrl)
	broadcasterMock := mocks.NewMockBroadcaster(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewLocationService(usersMock, friendsMock, broadcasterMock, logger)
	return service, usersMock, friendsMock, broadcasterMock
}

func TestUpdateLocation_FansOutToFriends(t *testing.T) {
	// Подготовка
	service, usersMock, friendsMock, broadcasterMock := newTestLocationService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().UpdateLastLocation(ctx, int64(1), 40.7128, -74.006).Return(true, nil).Times(1)
	friendsMock.EXPECT().FriendIDsWithLocationEnabled(ctx, int64(1)).Return([]int64{2, 3}, nil).Times(1)
	// Каждый друг получает событие в свою комнату, и только он
	broadcasterMock.EXPECT().SendToUser(int64(2), ws.EventFriendLocationUpdate, gomock.Any()).Times(1)
	broadcasterMock.EXPECT().SendToUser(int64(3), ws.EventFriendLocationUpdate, gomock.Any()).Times(1)

	// Действие
	err := service.UpdateLocation(ctx, 1, "alice@example.com", 40.7128, -74.006)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateLocation_SharingDisabled(t *testing.T) {
	// Подготовка
	service, usersMock, _, _ := newTestLocationService(t)
	ctx := context.Background()

	// Ожидания: запись не прошла условие is_location_enabled, фан-аута нет
	usersMock.EXPECT().UpdateLastLocation(ctx, int64(1), 40.7128, -74.006).Return(false, nil).Times(1)

	// Действие
	err := service.UpdateLocation(ctx, 1, "alice@example.com", 40.7128, -74.006)

	// Проверки
	require.ErrorIs(t, err, ErrLocationDisabled)
}

func TestUpdateLocation_PersistErrorStopsFanOut(t *testing.T) {
	// Подготовка
	service, usersMock, _, _ := newTestLocationService(t)
	ctx := context.Background()

	// Ожидания: ошибка записи обрывает конвейер до рассылки
	usersMock.EXPECT().UpdateLastLocation(ctx, int64(1), 40.7128, -74.006).Return(false, errors.New("db down")).Times(1)

	// Действие
	err := service.UpdateLocation(ctx, 1, "alice@example.com", 40.7128, -74.006)

	// Проверки
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocationDisabled)
}

func TestUpdateLocation_RejectsOutOfRangeCoordinates(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestLocationService(t)
	ctx := context.Background()

	// Действие и проверки: координаты вне диапазона не доходят до бд
	require.Error(t, service.UpdateLocation(ctx, 1, "alice@example.com", 95, 0))
	require.Error(t, service.UpdateLocation(ctx, 1, "alice@example.com", 0, 181))
}

func TestFriendLocations_Snapshot(t *testing.T) {
	// Подготовка
	service, _, friendsMock, _ := newTestLocationService(t)
	ctx := context.Background()
	lat, lng := 40.7128, -74.006
	expected := []*models.FriendLocation{
		{ID: 2, Email: "bob@example.com", Latitude: &lat, Longitude: &lng, IsLocationEnabled: true},
	}

	// Ожидания
	friendsMock.EXPECT().FriendLocations(ctx, int64(1)).Return(expected, nil).Times(1)

	// Действие
	locations, err := service.FriendLocations(ctx, 1)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestSetLocationEnabled(t *testing.T) {
	// Подготовка
	service, usersMock, _, _ := newTestLocationService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().SetLocationEnabled(ctx, int64(1), false).Return(nil).Times(1)

	// Действие и проверки
	require.NoError(t, service.SetLocationEnabled(ctx, 1, false))
}

func TestLocationEnabled(t *testing.T) {
	// Подготовка
	service, usersMock, _, _ := newTestLocationService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().GetLocationEnabled(ctx, int64(1)).Return(true, nil).Times(1)

	// Действие
	enabled, err := service.LocationEnabled(ctx, 1)

	// Проверки
	require.NoError(t, err)
	assert.True(t, enabled)
}
