package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/ports"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func toUserResponse(user *model.User) requestresponse.UserResponse {
	return requestresponse.UserResponse{
		UUID:       user.UUID,
		Email:      user.Email,
		Username:   user.Username,
		FullName:   user.FullName,
		Role:       user.Role,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Создает пользователя с ролью user, email и username уникальны
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Данные нового пользователя"
// @Success 201 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Слабый пароль или пустые поля"
// @Failure 409 {object} requestresponse.ErrorResponse "Email или username заняты"
// @Router /auth/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusCreated, toUserResponse(user))
}

// GetUser godoc
// @Summary Получение пользователя по UUID
// @Description Доступно администратору и самому пользователю
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID пользователя"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())
	userUUID := chi.URLParam(r, "uuid")

	user, err := h.userService.GetUser(r.Context(), claims, userUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// UpdateUser godoc
// @Summary Обновление профиля
// @Description Изменяет переданные поля профиля, доступно администратору и самому пользователю
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID пользователя"
// @Param body body requestresponse.UserUpdateRequest true "Изменяемые поля"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [patch]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())
	userUUID := chi.URLParam(r, "uuid")

	var req requestresponse.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), claims, userUUID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// ChangePassword godoc
// @Summary Смена пароля
// @Description Меняет пароль текущего пользователя после проверки старого
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param body body requestresponse.ChangePasswordRequest true "Старый и новый пароли"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный старый пароль или слабый новый"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /auth/change-password [post]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), claims, req.OldPassword, req.NewPassword); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.MessageResponse{Message: "Password changed successfully"})
}

// ListUsers godoc
// @Summary Список пользователей
// @Description Возвращает всех пользователей, только для администратора
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Success 200 {array} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	users, err := h.userService.ListUsers(r.Context(), claims)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]requestresponse.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}

	sendJSONResponse(w, http.StatusOK, responses)
}

// DeactivateUser godoc
// @Summary Деактивация пользователя
// @Description Деактивирует аккаунт, только для администратора; собственный аккаунт деактивировать нельзя
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID пользователя"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Попытка деактивировать собственный аккаунт"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [delete]
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())
	userUUID := chi.URLParam(r, "uuid")

	if err := h.userService.DeactivateUser(r.Context(), claims, userUUID); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.MessageResponse{Message: "User deactivated successfully"})
}

// ActivateUser godoc
// @Summary Активация пользователя
// @Description Снова активирует деактивированный аккаунт, только для администратора
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID пользователя"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid}/activate [post]
func (h *UserHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())
	userUUID := chi.URLParam(r, "uuid")

	user, err := h.userService.ActivateUser(r.Context(), claims, userUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, toUserResponse(user))
}
