package security_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kumarsatwik/evaluv/config"
	"github.com/Kumarsatwik/evaluv/internal/repository"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(ttl string) *security.JWTService {
	return security.NewJWTService(&config.JWTConfig{
		SecretKey:           "test-secret-key",
		AccessTokenTTL:      ttl,
		RefreshTokenTTLDays: 7,
	})
}

func newTestSessionRepo(t *testing.T) (*repository.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := repository.NewCacheRepository(&config.RedisClient{
		Client:      client,
		CallTimeout: time.Second,
	})
	return repository.NewSessionRepository(cache, 7), mr
}

func TestGenerateAccessToken(t *testing.T) {
	jwtService := newTestJWTService("30m")

	token, claims, err := jwtService.GenerateAccessToken("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "user-1", claims.UserUUID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "у токена должен быть jti")

	expectedExpiry := time.Now().Add(30 * time.Minute)
	assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateJWT(t *testing.T) {
	jwtService := newTestJWTService("30m")

	token, generated, err := jwtService.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	claims, err := jwtService.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, generated.ID, claims.ID)
	assert.Equal(t, "user-1", claims.UserUUID)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWT_WrongKey(t *testing.T) {
	token, _, err := newTestJWTService("30m").GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	other := security.NewJWTService(&config.JWTConfig{
		SecretKey:      "another-secret",
		AccessTokenTTL: "30m",
	})

	_, err = other.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	jwtService := newTestJWTService("-1m")

	token, _, err := jwtService.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = jwtService.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := newTestJWTService("30m").ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWT_WrongAlgorithm(t *testing.T) {
	// Токен подписан тем же ключом, но другим алгоритмом:
	// проверка alg не дает подменить способ подписи
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, &security.Claims{
		UserUUID:         "user-1",
		Role:             "user",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := token.SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = newTestJWTService("30m").ValidateJWT(signed)
	assert.Error(t, err)
}

// claimsProbe запоминает identity, которую gate положил в контекст.
type claimsProbe struct {
	called bool
	claims *security.Claims
}

func (p *claimsProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.claims, _ = r.Context().Value(security.UserContextKey).(*security.Claims)
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddleware_NoHeaderPassesThrough(t *testing.T) {
	jwtService := newTestJWTService("30m")
	sessionRepo, _ := newTestSessionRepo(t)

	probe := &claimsProbe{}
	mw := security.JWTMiddleware(jwtService, sessionRepo)(probe.handler())

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, probe.called)
	assert.Nil(t, probe.claims, "запрос без токена проходит неаутентифицированным")
}

func TestJWTMiddleware_MalformedHeaderPassesThrough(t *testing.T) {
	jwtService := newTestJWTService("30m")
	sessionRepo, _ := newTestSessionRepo(t)

	probe := &claimsProbe{}
	mw := security.JWTMiddleware(jwtService, sessionRepo)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, probe.called)
	assert.Nil(t, probe.claims)
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService("30m")
	sessionRepo, _ := newTestSessionRepo(t)

	probe := &claimsProbe{}
	mw := security.JWTMiddleware(jwtService, sessionRepo)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	request.Header.Set("Authorization", "Bearer garbage")

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, probe.called, "невалидный предъявленный токен не пропускается")
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	jwtService := newTestJWTService("30m")
	sessionRepo, _ := newTestSessionRepo(t)

	token, _, err := jwtService.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	probe := &claimsProbe{}
	mw := security.JWTMiddleware(jwtService, sessionRepo)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, probe.claims)
	assert.Equal(t, "user-1", probe.claims.UserUUID)
}

func TestJWTMiddleware_BlacklistedToken(t *testing.T) {
	jwtService := newTestJWTService("30m")
	sessionRepo, _ := newTestSessionRepo(t)

	token, claims, err := jwtService.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	err = sessionRepo.BlacklistToken(context.Background(), claims.ID, claims.UserUUID, claims.ExpiresAt.Time)
	require.NoError(t, err)

	probe := &claimsProbe{}
	mw := security.JWTMiddleware(jwtService, sessionRepo)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, probe.called)
	assert.Contains(t, recorder.Body.String(), "Token has been blacklisted")
}

func TestJWTMiddleware_BlacklistStoreUnavailable(t *testing.T) {
	jwtService := newTestJWTService("30m")
	sessionRepo, mr := newTestSessionRepo(t)

	token, _, err := jwtService.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	// Черный список недоступен: запрос с валидным токеном не проходит,
	// недоступность хранилища не означает "ничего не отозвано"
	mr.Close()

	probe := &claimsProbe{}
	mw := security.JWTMiddleware(jwtService, sessionRepo)(probe.handler())

	request := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	mw.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.False(t, probe.called)
}

func TestGetClaimsFromContext_Empty(t *testing.T) {
	_, err := security.GetClaimsFromContext(context.Background())
	assert.Error(t, err)
}
