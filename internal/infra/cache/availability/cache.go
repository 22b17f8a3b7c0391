// Package availability кэш ответов backend'а о доступности слотов.
// Ответы короткоживущие: TTL измеряется десятками секунд, чтобы
// публичный шаг выбора времени не бомбил backend при каждом клике
// по календарю, но быстро замечал новые бронирования.
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// Cache кэш доступных слотов в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш доступности с заданным TTL
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает закэшированные значения доступности.
// Второй результат false, если значения в кэше нет.
func (c *Cache) Get(ctx context.Context, date time.Time, durationMinutes int, barberID *int64) ([]types.TimeString, bool, error) {
	if c.client == nil {
		return nil, false, fmt.Errorf("redis client is nil")
	}

	val, err := c.client.Get(ctx, c.key(date, durationMinutes, barberID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get availability from redis: %w", err)
	}

	var values []types.TimeString
	if err := json.Unmarshal([]byte(val), &values); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal availability: %w", err)
	}

	return values, true, nil
}

// Set сохраняет значения доступности с TTL кэша
func (c *Cache) Set(ctx context.Context, date time.Time, durationMinutes int, barberID *int64, values []types.TimeString) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal availability: %w", err)
	}

	if err := c.client.Set(ctx, c.key(date, durationMinutes, barberID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set availability in redis: %w", err)
	}

	return nil
}

// Invalidate сбрасывает кэш для даты и барбера после создания,
// изменения или отмены записи
func (c *Cache) Invalidate(ctx context.Context, date time.Time, barberID *int64) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	pattern := fmt.Sprintf("availability:%s:*:%s", date.Format(domain.DateFormat), barberKey(barberID))

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete availability key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan availability keys: %w", err)
	}

	return nil
}

func (c *Cache) key(date time.Time, durationMinutes int, barberID *int64) string {
	return fmt.Sprintf("availability:%s:%d:%s",
		date.Format(domain.DateFormat), durationMinutes, barberKey(barberID))
}

func barberKey(barberID *int64) string {
	if barberID == nil {
		return "any"
	}
	return strconv.FormatInt(*barberID, 10)
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
