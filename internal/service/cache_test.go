package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/location_sharing_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLocationCache — вспомогательная функция для создания кэша с мок-хранилищем.
func newTestLocationCache(t *testing.T, maxKeys int) (*LocationCache, *mocks.MockCacheStore) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockCacheStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cache := NewLocationCache(storeMock, logger, maxKeys, 2)
	return cache, storeMock
}

func TestLocationCacheKey_SameBucket(t *testing.T) {
	cache, _ := newTestLocationCache(t, 50)

	// Точки в пределах одной ячейки сетки дают один и тот же ключ
	key1 := cache.Key(40.7128, -74.0060, 3000)
	key2 := cache.Key(40.7132, -74.0089, 3000)

	assert.Equal(t, key1, key2)
	assert.Equal(t, "location:40.71:-74.01:3000", key1)
}

func TestLocationCacheKey_TrailingZeros(t *testing.T) {
	cache, _ := newTestLocationCache(t, 50)

	// Хвостовые нули не печатаются: -74.00 -> "-74"
	key := cache.Key(40.7, -74.0, 3000)
	assert.Equal(t, "location:40.7:-74:3000", key)
}

func TestGetOrCompute_Hit(t *testing.T) {
	// Подготовка
	cache, storeMock := newTestLocationCache(t, 50)
	ctx := context.Background()
	cached := []byte(`[{"id":1}]`)

	// Ожидания: попадание в кэш никогда не вызывает compute и запись
	storeMock.EXPECT().
		Get(ctx, "location:40.71:-74.01:3000").
		Return(cached, nil).
		Times(1)

	// Действие
	data, err := cache.GetOrCompute(ctx, "location:40.71:-74.01:3000", time.Minute, func(ctx context.Context) ([]byte, error) {
		t.Fatal("compute must not be called on cache hit")
		return nil, nil
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, data)
}

func TestGetOrCompute_MissComputesAndStores(t *testing.T) {
	// Подготовка
	cache, storeMock := newTestLocationCache(t, 50)
	ctx := context.Background()
	key := "location:40.71:-74.01:3000"
	fresh := []byte(`[{"id":2}]`)

	// Ожидания
	storeMock.EXPECT().Get(ctx, key).Return(nil, nil).Times(1)
	storeMock.EXPECT().Set(ctx, key, fresh, time.Minute).Return(nil).Times(1)
	storeMock.EXPECT().TrackKey(ctx, key, gomock.Any()).Return(nil).Times(1)
	storeMock.EXPECT().TrackedCount(ctx).Return(int64(1), nil).Times(1)

	// Действие
	data, err := cache.GetOrCompute(ctx, key, time.Minute, func(ctx context.Context) ([]byte, error) {
		return fresh, nil
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fresh, data)
}

func TestGetOrCompute_EvictsOldestWhenFull(t *testing.T) {
	// Подготовка: лимит в два ключа, вставка третьего вытесняет старейший
	cache, storeMock := newTestLocationCache(t, 2)
	ctx := context.Background()
	key := "location:40.71:-74.01:3000"
	fresh := []byte(`[]`)

	// Ожидания
	storeMock.EXPECT().Get(ctx, key).Return(nil, nil).Times(1)
	storeMock.EXPECT().Set(ctx, key, fresh, time.Minute).Return(nil).Times(1)
	storeMock.EXPECT().TrackKey(ctx, key, gomock.Any()).Return(nil).Times(1)
	storeMock.EXPECT().TrackedCount(ctx).Return(int64(3), nil).Times(1)
	storeMock.EXPECT().PopOldestTracked(ctx).Return("location:1:1:100", nil).Times(1)
	storeMock.EXPECT().Delete(ctx, "location:1:1:100").Return(nil).Times(1)

	// Действие
	_, err := cache.GetOrCompute(ctx, key, time.Minute, func(ctx context.Context) ([]byte, error) {
		return fresh, nil
	})

	// Проверки
	require.NoError(t, err)
}

func TestGetOrCompute_StoreErrorFallsBackToCompute(t *testing.T) {
	// Подготовка
	cache, storeMock := newTestLocationCache(t, 50)
	ctx := context.Background()
	key := "location:40.71:-74.01:3000"
	fresh := []byte(`[{"id":3}]`)

	// Ожидания: при недоступном кэше значение считается напрямую без записи
	storeMock.EXPECT().Get(ctx, key).Return(nil, errors.New("connection refused")).Times(1)

	// Действие
	data, err := cache.GetOrCompute(ctx, key, time.Minute, func(ctx context.Context) ([]byte, error) {
		return fresh, nil
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fresh, data)
}

func TestGetOrCompute_ComputeErrorPropagates(t *testing.T) {
	// Подготовка
	cache, storeMock := newTestLocationCache(t, 50)
	ctx := context.Background()
	key := "location:40.71:-74.01:3000"
	wantErr := errors.New("db down")

	// Ожидания
	storeMock.EXPECT().Get(ctx, key).Return(nil, nil).Times(1)

	// Действие
	_, err := cache.GetOrCompute(ctx, key, time.Minute, func(ctx context.Context) ([]byte, error) {
		return nil, wantErr
	})

	// Проверки
	require.ErrorIs(t, err, wantErr)
}

func TestInvalidate(t *testing.T) {
	// Подготовка
	cache, storeMock := newTestLocationCache(t, 50)
	ctx := context.Background()
	key := "location:40.71:-74.01:3000"

	// Ожидания
	storeMock.EXPECT().Delete(ctx, key).Return(nil).Times(1)
	storeMock.EXPECT().ForgetKey(ctx, key).Return(nil).Times(1)

	// Действие и проверки
	require.NoError(t, cache.Invalidate(ctx, key))
}

func TestInvalidateAround(t *testing.T) {
	// Подготовка
	cache, storeMock := newTestLocationCache(t, 50)
	ctx := context.Background()

	nearKey := "location:40.71:-74.01:3000"   // точка лежит внутри радиуса бакета
	farKey := "location:48.85:2.35:3000"      // другой континент
	garbageKey := "not-a-location-key"        // мусор в наборе игнорируется

	// Ожидания: сбрасывается только близкий бакет
	storeMock.EXPECT().
		TrackedKeys(ctx).
		Return([]string{nearKey, farKey, garbageKey}, nil).
		Times(1)
	storeMock.EXPECT().Delete(ctx, nearKey).Return(nil).Times(1)
	storeMock.EXPECT().ForgetKey(ctx, nearKey).Return(nil).Times(1)

	// Действие
	invalidated, err := cache.InvalidateAround(ctx, 40.7128, -74.0060)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, invalidated)
}

func TestStats(t *testing.T) {
	// Подготовка
	cache, storeMock := newTestLocationCache(t, 50)
	ctx := context.Background()
	keys := []string{"location:40.71:-74.01:3000", "location:55.75:37.62:5000"}

	// Ожидания
	storeMock.EXPECT().TrackedCount(ctx).Return(int64(2), nil).Times(1)
	storeMock.EXPECT().TrackedKeys(ctx).Return(keys, nil).Times(1)

	// Действие
	stats, err := cache.Stats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalLocations)
	assert.Equal(t, keys, stats.CachedKeys)
}
