package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/ports"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/util"
)

type AuthenticationHandler struct {
	authenticationService ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService: authenticationService}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдает пару access/refresh токенов по username и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Логин и пароль"
// @Success 200 {object} requestresponse.TokenResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверные учетные данные"
// @Router /auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		util.HandleError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	tokens, err := h.authenticationService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	})
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Description Выдает новую пару токенов по действующему refresh токену, старый refresh токен отзывается
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Refresh токен"
// @Success 200 {object} requestresponse.TokenResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Refresh токен отсутствует или истек"
// @Router /auth/refresh [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.RefreshToken == "" {
		util.HandleError(w, "Refresh token is required", http.StatusBadRequest)
		return
	}

	tokens, err := h.authenticationService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	})
}

// Logout godoc
// @Summary Завершение сессии
// @Description Заносит access токен в черный список до его естественного истечения, refresh токен (если передан) отзывается
// @Tags Authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param body body requestresponse.LogoutRequest false "Refresh токен (необязательно)"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище сессий недоступно"
// @Router /auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	// Тело необязательно
	var req requestresponse.LogoutRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.authenticationService.Logout(r.Context(), claims, req.RefreshToken); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.MessageResponse{Message: "Successfully logged out"})
}

// Me godoc
// @Summary Текущий пользователь
// @Description Возвращает профиль пользователя, которому принадлежит access токен
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.authenticationService.CurrentUser(r.Context(), claims)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, toUserResponse(user))
}
