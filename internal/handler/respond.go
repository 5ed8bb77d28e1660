package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/util"
)

func sendJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// handleServiceError отображает доменную ошибку в HTTP ответ.
// Наружу уходит только стабильная формулировка, внутренние
// подробности остаются в логе.
func handleServiceError(w http.ResponseWriter, err error) {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode == http.StatusInternalServerError {
		log.Printf("внутренняя ошибка: %v", err)
	}
	util.HandleError(w, errorDetail(err), statusCode)
}

func errorDetail(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return "Not authenticated"
	case errors.Is(err, apperrors.ErrForbidden):
		return "Insufficient permissions"
	case errors.Is(err, apperrors.ErrInvalidOperation):
		return "Invalid operation"
	case errors.Is(err, apperrors.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, apperrors.ErrConflict):
		return "Resource already exists"
	case errors.Is(err, apperrors.ErrRateLimited):
		return "Rate limit exceeded"
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return "Service temporarily unavailable"
	default:
		return "Internal server error"
	}
}
