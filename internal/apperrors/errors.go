package apperrors

import (
	"errors"
	"net/http"
)

// Единый набор ошибок доменного уровня. Сервисы возвращают эти ошибки
// (возможно обёрнутыми через %w), хендлеры отображают их в HTTP статусы
// через HTTPStatus и errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("not authenticated")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// HTTPStatus возвращает стабильный статус-код для доменной ошибки.
// Неизвестные ошибки считаются внутренними.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
