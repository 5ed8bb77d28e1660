package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient держит пул соединений с Redis.
// Пул безопасен для конкурентного использования, клиентский код
// не хранит никаких собственных счетчиков.
type RedisClient struct {
	Client      *redis.Client
	CallTimeout time.Duration
}

func NewRedisClient(cfg *RedisConfig) (*RedisClient, error) {
	callTimeout := 3 * time.Second
	if cfg.CallTimeout != "" {
		parsed, err := time.ParseDuration(cfg.CallTimeout)
		if err != nil {
			return nil, fmt.Errorf("ошибка парсинга call_timeout: %w", err)
		}
		callTimeout = parsed
	}

	pingTimeout := 5 * time.Second
	if cfg.PingTimeout != "" {
		parsed, err := time.ParseDuration(cfg.PingTimeout)
		if err != nil {
			return nil, fmt.Errorf("ошибка парсинга ping_timeout: %w", err)
		}
		pingTimeout = parsed
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка подключения к Redis: %w", err)
	}

	log.Println("Подключение к Redis успешно выполнено")
	return &RedisClient{
		Client:      client,
		CallTimeout: callTimeout,
	}, nil
}

func (r *RedisClient) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия соединения с Redis: %w", err)
	}
	return nil
}
