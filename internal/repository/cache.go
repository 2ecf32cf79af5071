package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/location_sharing_system/internal/service"
)

// Набор живых ключей гео-кэша. Отсортирован по времени вставки,
// чтобы вытеснение было детерминированным (самый старый уходит первым).
const trackedKeysSet = "cached_location_keys"

// RedisCacheStore - реализация CacheStore поверх Redis. TTL значений
// выставляется через SET с expiration, поэтому истечение авторитетно:
// просроченный бакет никогда не вернется как попадание.
type RedisCacheStore struct {
	client *redis.Client
}

func NewRedisCacheStore(client *redis.Client) service.CacheStore {
	return &RedisCacheStore{
		client: client,
	}
}

// Get возвращает значение по ключу, nil если ключа нет или он истек
func (s *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache value: %w", err)
	}
	return val, nil
}

// Set сохраняет значение с TTL
func (s *RedisCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache value: %w", err)
	}
	return nil
}

// Delete удаляет значения по ключам
func (s *RedisCacheStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}

// TrackKey регистрирует ключ в наборе живых ключей со score по времени вставки
func (s *RedisCacheStore) TrackKey(ctx context.Context, key string, insertedAt time.Time) error {
	err := s.client.ZAdd(ctx, trackedKeysSet, redis.Z{
		Score:  float64(insertedAt.UnixNano()),
		Member: key,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to track cache key: %w", err)
	}
	return nil
}

// TrackedCount возвращает количество отслеживаемых ключей
func (s *RedisCacheStore) TrackedCount(ctx context.Context) (int64, error) {
	count, err := s.client.ZCard(ctx, trackedKeysSet).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count tracked keys: %w", err)
	}
	return count, nil
}

// TrackedKeys возвращает все отслеживаемые ключи, старые первыми
func (s *RedisCacheStore) TrackedKeys(ctx context.Context) ([]string, error) {
	keys, err := s.client.ZRange(ctx, trackedKeysSet, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked keys: %w", err)
	}
	return keys, nil
}

// PopOldestTracked снимает с отслеживания самый старый ключ и возвращает его,
// пустая строка если набор пуст
func (s *RedisCacheStore) PopOldestTracked(ctx context.Context) (string, error) {
	members, err := s.client.ZPopMin(ctx, trackedKeysSet, 1).Result()
	if err != nil {
		return "", fmt.Errorf("failed to pop oldest tracked key: %w", err)
	}
	if len(members) == 0 {
		return "", nil
	}
	key, ok := members[0].Member.(string)
	if !ok {
		return "", fmt.Errorf("unexpected tracked key type: %T", members[0].Member)
	}
	return key, nil
}

// ForgetKey убирает ключ из набора отслеживаемых
func (s *RedisCacheStore) ForgetKey(ctx context.Context, key string) error {
	if err := s.client.ZRem(ctx, trackedKeysSet, key).Err(); err != nil {
		return fmt.Errorf("failed to untrack cache key: %w", err)
	}
	return nil
}
