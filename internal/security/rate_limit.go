package security

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kumarsatwik/evaluv/config"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/observability"
	"github.com/Kumarsatwik/evaluv/internal/repository"
	"github.com/Kumarsatwik/evaluv/internal/util"
)

// RateLimiter — лимитер с фиксированным окном: счетчик на клиента,
// INCR + EXPIRE поверх Redis. Окно не скользящее: на границе двух окон
// клиент может успеть сделать до 2x лимита запросов, это осознанный
// компромисс ради O(1) состояния на клиента.
type RateLimiter struct {
	cache  *repository.CacheRepository
	limit  int
	window time.Duration
}

func NewRateLimiter(cache *repository.CacheRepository, cfg *config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cache:  cache,
		limit:  cfg.Requests,
		window: time.Duration(cfg.WindowSeconds) * time.Second,
	}
}

func rateLimitKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s", identifier)
}

// Check атомарно учитывает запрос идентификатора и возвращает решение.
// Первый запрос в окне взводит TTL через SET NX EX; дальше только INCR.
func (l *RateLimiter) Check(ctx context.Context, identifier string) (*model.RateLimitResult, error) {
	key := rateLimitKey(identifier)
	now := time.Now().Unix()

	created, err := l.cache.SetNX(ctx, key, "1", l.window)
	if err != nil {
		return nil, err
	}
	if created {
		return &model.RateLimitResult{
			Allowed:   true,
			Remaining: l.limit - 1,
			Reset:     now + int64(l.window.Seconds()),
		}, nil
	}

	count, err := l.cache.Incr(ctx, key)
	if err != nil {
		return nil, err
	}

	ttl, err := l.cache.TTL(ctx, key)
	if err != nil {
		return nil, err
	}
	if ttl < 0 {
		// Ключ пережил окно без TTL (гонка на границе окна):
		// первый инкремент нового окна перевзводит таймер.
		ttl = l.window
		if err := l.cache.Expire(ctx, key, l.window); err != nil {
			return nil, err
		}
	}

	reset := now + int64(ttl.Seconds())

	if count > int64(l.limit) {
		return &model.RateLimitResult{Allowed: false, Remaining: 0, Reset: reset}, nil
	}

	return &model.RateLimitResult{
		Allowed:   true,
		Remaining: l.limit - int(count),
		Reset:     reset,
	}, nil
}

// Middleware выполняет rate limit до аутентификации. Если Redis недоступен,
// запрос пропускается с синтетическими заголовками (fail open): лимитер
// не должен превращаться в точку отказа сервиса, который он защищает.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identifier := ClientIdentifier(request)

		result, err := l.Check(request.Context(), identifier)
		if err != nil {
			log.Printf("rate limiter: Redis недоступен, пропускаем запрос: %v", err)
			observability.RateLimitDecisions.WithLabelValues("fail_open").Inc()

			now := time.Now().Unix()
			l.writeHeaders(writer, l.limit-1, now+int64(l.window.Seconds()))
			next.ServeHTTP(writer, request)
			return
		}

		l.writeHeaders(writer, result.Remaining, result.Reset)

		if !result.Allowed {
			retryAfter := result.Reset - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			writer.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			observability.RateLimitDecisions.WithLabelValues("denied").Inc()
			util.HandleError(writer, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		observability.RateLimitDecisions.WithLabelValues("allowed").Inc()
		next.ServeHTTP(writer, request)
	})
}

func (l *RateLimiter) writeHeaders(writer http.ResponseWriter, remaining int, reset int64) {
	if remaining < 0 {
		remaining = 0
	}
	writer.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
	writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	writer.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
	writer.Header().Set("X-RateLimit-Window", strconv.Itoa(int(l.window.Seconds())))
}

// ClientIdentifier выбирает идентификатор клиента: первый адрес из
// X-Forwarded-For, затем X-Real-IP, затем адрес соединения.
func ClientIdentifier(request *http.Request) string {
	forwarded := request.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	realIP := request.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
