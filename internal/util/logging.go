package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError пишет JSON ошибку вида {"detail": "..."}.
// Во внешний ответ попадает только переданное сообщение,
// внутренние детали (адреса, стеки) наружу не выходят.
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Detail string `json:"detail"`
	}{
		Detail: message,
	}

	json.NewEncoder(w).Encode(errorResponse)
}
