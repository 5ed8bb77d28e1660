package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/ports"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/google/uuid"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// Register создает нового пользователя с ролью user. Email и username
// уникальны; слабый пароль отклоняется до обращения к базе.
func (s *UserService) Register(ctx context.Context, req *requestresponse.RegisterRequest) (*model.User, error) {
	if req.Email == "" || req.Username == "" {
		return nil, fmt.Errorf("%w: email и username обязательны", apperrors.ErrInvalidOperation)
	}

	if err := security.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidOperation, err)
	}

	existing, err := s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка поиска по email", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email уже занят", apperrors.ErrConflict)
	}

	existing, err = s.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка поиска по username", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username уже занят", apperrors.ErrConflict)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка хэширования пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         model.RoleUser,
		IsActive:     true,
		IsVerified:   false,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка создания пользователя", err)
	}

	log.Printf("[UserService] зарегистрирован пользователь %s", created.UUID)
	return created, nil
}

// GetUser возвращает пользователя по UUID. Доступен администратору
// и самому пользователю.
func (s *UserService) GetUser(ctx context.Context, claims *security.Claims, userUUID string) (*model.User, error) {
	if err := security.RequireSelfOrAdmin(claims, userUUID); err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	return user, nil
}

// UpdateUser изменяет профиль. Передаются только изменяемые поля,
// остальные остаются как есть.
func (s *UserService) UpdateUser(ctx context.Context, claims *security.Claims, userUUID string, req *requestresponse.UserUpdateRequest) (*model.User, error) {
	if err := security.RequireSelfOrAdmin(claims, userUUID); err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepository.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, util.LogError("[UserService] ошибка поиска по email", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email уже занят", apperrors.ErrConflict)
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		existing, err := s.userRepository.FindByUsername(ctx, *req.Username)
		if err != nil {
			return nil, util.LogError("[UserService] ошибка поиска по username", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: username уже занят", apperrors.ErrConflict)
		}
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, util.LogError("[UserService] ошибка обновления пользователя", err)
	}

	return user, nil
}

// ChangePassword меняет пароль текущего пользователя после проверки
// старого. Старые access токены продолжают жить до истечения,
// отзыв по смене пароля не выполняется.
func (s *UserService) ChangePassword(ctx context.Context, claims *security.Claims, oldPassword, newPassword string) error {
	if err := security.RequireAuthenticated(claims); err != nil {
		return err
	}

	user, err := s.userRepository.FindByUUID(ctx, claims.UserUUID)
	if err != nil {
		return util.LogError("[UserService] ошибка поиска пользователя", err)
	}
	if user == nil {
		return apperrors.ErrNotFound
	}

	if !security.CheckPassword(oldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: неверный текущий пароль", apperrors.ErrInvalidOperation)
	}

	if err := security.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidOperation, err)
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return util.LogError("[UserService] ошибка хэширования пароля", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, user.UUID, hash); err != nil {
		return util.LogError("[UserService] ошибка обновления пароля", err)
	}

	return nil
}

// ListUsers возвращает всех пользователей. Только для администратора.
func (s *UserService) ListUsers(ctx context.Context, claims *security.Claims) ([]*model.User, error) {
	if err := security.RequireRole(claims, model.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка получения списка пользователей", err)
	}

	return users, nil
}

// DeactivateUser деактивирует аккаунт. Только для администратора;
// деактивация собственного аккаунта запрещена отдельно от проверки
// роли, это ошибка операции, а не прав.
func (s *UserService) DeactivateUser(ctx context.Context, claims *security.Claims, userUUID string) error {
	if err := security.RequireRole(claims, model.RoleAdmin); err != nil {
		return err
	}

	if claims.UserUUID == userUUID {
		return fmt.Errorf("%w: нельзя деактивировать собственный аккаунт", apperrors.ErrInvalidOperation)
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return util.LogError("[UserService] ошибка поиска пользователя", err)
	}
	if user == nil {
		return apperrors.ErrNotFound
	}

	if err := s.userRepository.SetActive(ctx, userUUID, false); err != nil {
		return util.LogError("[UserService] ошибка деактивации пользователя", err)
	}

	log.Printf("[UserService] пользователь %s деактивирован администратором %s", userUUID, claims.UserUUID)
	return nil
}

// ActivateUser снова активирует деактивированный аккаунт.
func (s *UserService) ActivateUser(ctx context.Context, claims *security.Claims, userUUID string) (*model.User, error) {
	if err := security.RequireRole(claims, model.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := s.userRepository.SetActive(ctx, userUUID, true); err != nil {
		return nil, util.LogError("[UserService] ошибка активации пользователя", err)
	}

	user.IsActive = true
	return user, nil
}
