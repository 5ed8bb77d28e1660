package security_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Kumarsatwik/evaluv/config"
	"github.com/Kumarsatwik/evaluv/internal/repository"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit, windowSeconds int) (*security.RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := repository.NewCacheRepository(&config.RedisClient{
		Client:      client,
		CallTimeout: time.Second,
	})
	limiter := security.NewRateLimiter(cache, &config.RateLimitConfig{
		Requests:      limit,
		WindowSeconds: windowSeconds,
	})
	return limiter, mr
}

func TestCheck_FirstRequest(t *testing.T) {
	limiter, mr := newTestLimiter(t, 100, 3600)

	result, err := limiter.Check(context.Background(), "10.0.0.1")
	require.NoError(t, err)

	assert.True(t, result.Allowed)
	assert.Equal(t, 99, result.Remaining)

	// Первый запрос взводит счетчик со значением 1 и TTL окна
	value, err := mr.Get("ratelimit:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
	assert.InDelta(t, 3600, mr.TTL("ratelimit:10.0.0.1").Seconds(), 1)
}

func TestCheck_CountsDownToZero(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, 60)

	for i, wantRemaining := range []int{2, 1, 0} {
		result, err := limiter.Check(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, result.Allowed, "запрос %d должен пройти", i+1)
		assert.Equal(t, wantRemaining, result.Remaining)
	}

	result, err := limiter.Check(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestCheck_HundredthAllowedNextDenied(t *testing.T) {
	limiter, _ := newTestLimiter(t, 100, 3600)

	for i := 0; i < 100; i++ {
		result, err := limiter.Check(context.Background(), "client")
		require.NoError(t, err)
		require.True(t, result.Allowed, "запрос %d должен пройти", i+1)
	}

	result, err := limiter.Check(context.Background(), "client")
	require.NoError(t, err)
	assert.False(t, result.Allowed, "101-й запрос в окне отклоняется")
}

func TestCheck_WindowExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t, 2, 60)

	for i := 0; i < 2; i++ {
		_, err := limiter.Check(context.Background(), "10.0.0.1")
		require.NoError(t, err)
	}

	result, err := limiter.Check(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	require.False(t, result.Allowed)

	mr.FastForward(61 * time.Second)

	result, err = limiter.Check(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.Allowed, "новое окно начинается с чистого счетчика")
	assert.Equal(t, 1, result.Remaining)
}

func TestCheck_IndependentIdentifiers(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 60)

	first, err := limiter.Check(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	denied, err := limiter.Check(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	other, err := limiter.Check(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "лимит считается на каждого клиента отдельно")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_Headers(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, 60)
	mw := limiter.Middleware(okHandler())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.1:12345"
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "5", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", recorder.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", recorder.Header().Get("X-RateLimit-Window"))
	assert.NotEmpty(t, recorder.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, recorder.Header().Get("Retry-After"), "Retry-After только на отклоненных ответах")
}

func TestMiddleware_TooManyRequests(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 60)
	mw := limiter.Middleware(okHandler())

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.1:12345"

	mw.ServeHTTP(httptest.NewRecorder(), request)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "0", recorder.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, recorder.Body.String(), "Rate limit exceeded")

	retryAfter, err := strconv.Atoi(recorder.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retryAfter, 1)
}

func TestMiddleware_FailOpen(t *testing.T) {
	limiter, mr := newTestLimiter(t, 100, 3600)

	// Redis лег: запросы проходят с синтетическими заголовками
	mr.Close()

	mw := limiter.Middleware(okHandler())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.1:12345"
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "100", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "99", recorder.Header().Get("X-RateLimit-Remaining"))
}

func TestClientIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{
			name:       "X-Forwarded-For берет первый адрес цепочки",
			forwarded:  "203.0.113.7, 10.0.0.1",
			realIP:     "198.51.100.2",
			remoteAddr: "10.0.0.1:32000",
			want:       "203.0.113.7",
		},
		{
			name:       "X-Real-IP при отсутствии X-Forwarded-For",
			realIP:     "198.51.100.2",
			remoteAddr: "10.0.0.1:32000",
			want:       "198.51.100.2",
		},
		{
			name:       "RemoteAddr без порта",
			remoteAddr: "10.0.0.1:32000",
			want:       "10.0.0.1",
		},
		{
			name:       "RemoteAddr без порта остается как есть",
			remoteAddr: "10.0.0.1",
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				request.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				request.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, security.ClientIdentifier(request))
		})
	}
}

func TestMiddleware_SeparateClients(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 60)
	mw := limiter.Middleware(okHandler())

	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = fmt.Sprintf("10.0.0.%d:1000", i)
		mw.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}
}
