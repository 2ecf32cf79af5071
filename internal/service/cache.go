package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache.go -package=mocks

// Метров в одном градусе широты, хватает для оценки зазора ячейки
const metersPerDegree = 111320.0

// CacheStore определяет контракт key-value хранилища кэша. Отслеживаемые
// ключи лежат в отдельном упорядоченном наборе по времени вставки, чтобы
// вытеснение было детерминированным.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	TrackKey(ctx context.Context, key string, insertedAt time.Time) error
	TrackedCount(ctx context.Context) (int64, error)
	TrackedKeys(ctx context.Context) ([]string, error)
	PopOldestTracked(ctx context.Context) (string, error)
	ForgetKey(ctx context.Context, key string) error
}

// LocationCache - ограниченный кэш гео-запросов. Координаты округляются до
// сетки фиксированной точности, поэтому близкие запросы попадают в один
// бакет. Кэш - оптимизация: при любой ошибке хранилища значение считается
// напрямую.
type LocationCache struct {
	store     CacheStore
	logger    *logrus.Logger
	maxKeys   int
	precision int
}

func NewLocationCache(store CacheStore, logger *logrus.Logger, maxKeys, precision int) *LocationCache {
	return &LocationCache{
		store:     store,
		logger:    logger,
		maxKeys:   maxKeys,
		precision: precision,
	}
}

// Key строит детерминированный ключ бакета из округленных координат и радиуса
func (c *LocationCache) Key(lat, lng, radiusMeters float64) string {
	return fmt.Sprintf("location:%s:%s:%s",
		formatCoord(roundCoord(lat, c.precision)),
		formatCoord(roundCoord(lng, c.precision)),
		formatCoord(radiusMeters),
	)
}

// GetOrCompute возвращает закэшированное значение, если оно живо, иначе
// вычисляет, сохраняет с TTL и возвращает свежее. Попадание в кэш никогда
// не вызывает compute.
func (c *LocationCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	cached, err := c.store.Get(ctx, key)
	if err != nil {
		// Кэш недоступен - считаем напрямую, без записи
		c.logger.WithError(err).WithField("key", key).Warn("Cache get failed, falling back to direct compute")
		return compute(ctx)
	}
	if cached != nil {
		c.logger.WithField("key", key).Debug("Cache hit")
		return cached, nil
	}

	c.logger.WithField("key", key).Debug("Cache miss")
	fresh, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, fresh, ttl)
	return fresh, nil
}

// set сохраняет значение и регистрирует ключ в наборе отслеживаемых.
// При превышении лимита вытесняется самый старый по времени вставки ключ.
// Ошибки записи только логируются, значение уже вычислено.
func (c *LocationCache) set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.store.Set(ctx, key, value, ttl); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache set failed")
		return
	}

	if err := c.store.TrackKey(ctx, key, time.Now()); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to track cache key")
		return
	}

	count, err := c.store.TrackedCount(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to count tracked cache keys")
		return
	}

	for count > int64(c.maxKeys) {
		evicted, err := c.store.PopOldestTracked(ctx)
		if err != nil {
			c.logger.WithError(err).Warn("Failed to evict cache key")
			return
		}
		if evicted == "" {
			return
		}
		if err := c.store.Delete(ctx, evicted); err != nil {
			c.logger.WithError(err).WithField("key", evicted).Warn("Failed to delete evicted cache key")
		}
		c.logger.WithField("key", evicted).Debug("Evicted cache key")
		count--
	}
}

// Invalidate удаляет бакет и его запись в наборе отслеживаемых ключей
func (c *LocationCache) Invalidate(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate cache key %s: %w", key, err)
	}
	if err := c.store.ForgetKey(ctx, key); err != nil {
		return fmt.Errorf("failed to untrack cache key %s: %w", key, err)
	}
	return nil
}

// InvalidateAround сбрасывает все бакеты, в радиус которых может попадать
// точка. Зазор в половину диагонали ячейки учитывает округление центра
// бакета. Возвращает количество сброшенных бакетов.
func (c *LocationCache) InvalidateAround(ctx context.Context, lat, lng float64) (int, error) {
	keys, err := c.store.TrackedKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list tracked cache keys: %w", err)
	}

	cellSlack := math.Pow(10, -float64(c.precision)) * metersPerDegree * math.Sqrt2 / 2

	invalidated := 0
	for _, key := range keys {
		bucketLat, bucketLng, radius, ok := parseLocationKey(key)
		if !ok {
			continue
		}
		if haversineMeters(lat, lng, bucketLat, bucketLng) <= radius+cellSlack {
			if err := c.Invalidate(ctx, key); err != nil {
				c.logger.WithError(err).WithField("key", key).Warn("Failed to invalidate cache bucket")
				continue
			}
			invalidated++
		}
	}
	return invalidated, nil
}

// CacheStats - снимок состояния кэша для административного эндпоинта
type CacheStats struct {
	TotalLocations int64    `json:"total_locations"`
	CachedKeys     []string `json:"cached_keys"`
}

// Stats возвращает количество и список отслеживаемых ключей
func (c *LocationCache) Stats(ctx context.Context) (*CacheStats, error) {
	count, err := c.store.TrackedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tracked cache keys: %w", err)
	}
	keys, err := c.store.TrackedKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked cache keys: %w", err)
	}
	return &CacheStats{TotalLocations: count, CachedKeys: keys}, nil
}

func roundCoord(v float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(v*factor) / factor
}

// formatCoord печатает число без хвостовых нулей: 40.71 -> "40.71", -74.0 -> "-74"
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseLocationKey разбирает ключ вида location:<lat>:<lng>:<radius>
func parseLocationKey(key string) (lat, lng, radius float64, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 4 || parts[0] != "location" {
		return 0, 0, 0, false
	}
	var err error
	if lat, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return 0, 0, 0, false
	}
	if lng, err = strconv.ParseFloat(parts[2], 64); err != nil {
		return 0, 0, 0, false
	}
	if radius, err = strconv.ParseFloat(parts[3], 64); err != nil {
		return 0, 0, 0, false
	}
	return lat, lng, radius, true
}

// haversineMeters - расстояние между двумя точками на сфере
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371000.0

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadius * math.Asin(math.Sqrt(a))
}
