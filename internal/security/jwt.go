package security

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Kumarsatwik/evaluv/config"
	"github.com/Kumarsatwik/evaluv/internal/observability"
	"github.com/Kumarsatwik/evaluv/internal/repository"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// Claims — содержимое access токена.
// jti (RegisteredClaims.ID) нужен только как компактный идентификатор
// для черного списка: подпись сама по себе не может выразить
// "этот валидный токен был отозван".
type Claims struct {
	UserUUID string `json:"user_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// GenerateAccessToken создает подписанный access токен с claims
// {sub, user_id, role, jti, iat, exp}. Ключ и алгоритм подписи
// фиксируются конфигурацией на старте процесса.
func (service *JWTService) GenerateAccessToken(userUUID string, role string) (string, *Claims, error) {
	timeDuration, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return "", nil, util.LogError("ошибка парсинга access_token_ttl", err)
	}

	now := time.Now()
	claims := &Claims{
		UserUUID: userUUID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userUUID,
			ExpiresAt: jwt.NewNumericDate(now.Add(timeDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "evaluv",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := jwtToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return "", nil, util.LogError("ошибка подписи токена", err)
	}

	return accessToken, claims, nil
}

// AccessTokenLifetime возвращает срок жизни access токена.
func (service *JWTService) AccessTokenLifetime() (time.Duration, error) {
	return time.ParseDuration(service.AccessTokenTTL)
}

// ValidateJWT проверяет подпись и срок действия токена.
// Любая ошибка означает для вызывающего кода "не аутентифицирован",
// никаких паник в бизнес-логику не пробрасывается.
func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return []byte(service.SecretKey), nil
	})

	if err != nil || !jwtToken.Valid {
		return nil, fmt.Errorf("невалидный токен: %w", err)
	}

	return claims, nil
}

// JWTMiddleware — request gate. Запрос без заголовка Authorization (или с
// заголовком не вида "Bearer ...") проходит дальше неаутентифицированным:
// обязательность аутентификации решает policy-проверка каждой операции,
// публичные и защищенные маршруты делят один pipeline.
// Предъявленный токен обязан быть валидным и не отозванным, иначе 401.
func JWTMiddleware(jwtService *JWTService, sessionRepository *repository.SessionRepository) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(jwtService, sessionRepository, next))
	}
}

func handleAuthentication(jwtService *JWTService, sessionRepository *repository.SessionRepository, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if !strings.HasPrefix(authorizationHeader, "Bearer ") {
			next.ServeHTTP(writer, request)
			return
		}

		token := strings.TrimPrefix(authorizationHeader, "Bearer ")

		claims, err := jwtService.ValidateJWT(token)
		if err != nil {
			log.Printf("невалидный токен: %v", err)
			observability.AuthDecisions.WithLabelValues("invalid").Inc()
			util.HandleError(writer, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		blacklisted, err := sessionRepository.IsBlacklisted(request.Context(), claims.ID)
		if err != nil {
			// Недоступный черный список не означает "ничего не отозвано":
			// в отличие от лимитера здесь ошибка поднимается наверх.
			log.Printf("ошибка проверки черного списка: %v", err)
			observability.AuthDecisions.WithLabelValues("store_error").Inc()
			util.HandleError(writer, "Authorization store unavailable", http.StatusServiceUnavailable)
			return
		}
		if blacklisted {
			observability.AuthDecisions.WithLabelValues("blacklisted").Inc()
			util.HandleError(writer, "Token has been blacklisted", http.StatusUnauthorized)
			return
		}

		observability.AuthDecisions.WithLabelValues("authenticated").Inc()
		req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
		next.ServeHTTP(writer, req)
	}
}

// GetClaimsFromContext достает identity, положенную gate-ом.
// Identity неизменяема до конца обработки запроса.
func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
