package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Kumarsatwik/evaluv/config"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound возвращается из Get при отсутствии ключа.
var ErrKeyNotFound = errors.New("key not found")

// CacheRepository — тонкий адаптер над Redis. Единственные операции,
// от которых требуется атомарность хранилища — INCR и SET NX EX.
// Каждое обращение ограничено таймаутом, чтобы запрос не завис
// на недоступном Redis.
type CacheRepository struct {
	client *config.RedisClient
}

func NewCacheRepository(rdb *config.RedisClient) *CacheRepository {
	return &CacheRepository{rdb}
}

func (r *CacheRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.client.CallTimeout)
}

func (r *CacheRepository) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	val, err := r.client.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	} else if err != nil {
		return "", util.LogError("ошибка чтения из Redis", err)
	}
	return val, nil
}

func (r *CacheRepository) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	return nil
}

func (r *CacheRepository) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	created, err := r.client.Client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, util.LogError("ошибка SETNX в Redis", err)
	}
	return created, nil
}

func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.Client.Del(ctx, key).Err(); err != nil {
		return util.LogError("ошибка удаления из Redis", err)
	}
	return nil
}

func (r *CacheRepository) Incr(ctx context.Context, key string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	count, err := r.client.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, util.LogError("ошибка инкремента в Redis", err)
	}
	return count, nil
}

func (r *CacheRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	ttl, err := r.client.Client.TTL(ctx, key).Result()
	if err != nil {
		return 0, util.LogError("ошибка чтения TTL из Redis", err)
	}
	return ttl, nil
}

func (r *CacheRepository) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.Client.Expire(ctx, key, ttl).Err(); err != nil {
		return util.LogError("ошибка установки TTL в Redis", err)
	}
	return nil
}

func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	exists, err := r.client.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, util.LogError("ошибка проверки ключа в Redis", err)
	}
	return exists > 0, nil
}
