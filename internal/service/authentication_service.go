package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/ports"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/util"
)

type AuthenticationService struct {
	jwtService        ports.JWTServiceInterface
	sessionRepository ports.SessionRepository
	userRepository    ports.UserRepository
}

func NewAuthenticationService(
	jwtService ports.JWTServiceInterface,
	sessionRepository ports.SessionRepository,
	userRepository ports.UserRepository,
) *AuthenticationService {
	return &AuthenticationService{
		jwtService:        jwtService,
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
	}
}

// Login аутентифицирует пользователя по username и паролю и выдает
// пару токенов. Несуществующий пользователь, неверный пароль и
// деактивированный аккаунт наружу неразличимы: во всех случаях
// возвращается ErrInvalidCredentials.
func (s *AuthenticationService) Login(ctx context.Context, username, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, util.LogError("[AuthenticationService] ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Printf("[AuthenticationService] попытка входа деактивированного пользователя %s", user.UUID)
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh выдает новую пару токенов по refresh токену и отзывает
// использованный токен (одноразовая ротация).
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	userUUID, err := s.sessionRepository.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, util.LogError("[AuthenticationService] ошибка проверки refresh токена", err)
	}
	if userUUID == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, util.LogError("[AuthenticationService] ошибка поиска пользователя", err)
	}
	if user == nil || !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		// Новая пара уже выдана, старый токен доживет до своего TTL
		log.Printf("[AuthenticationService] не удалось отозвать старый refresh токен: %v", err)
	}

	return tokens, nil
}

// Logout заносит access токен в черный список до момента его
// естественного истечения. Переданный refresh токен отзывается
// дополнительно; его отсутствие не ошибка.
func (s *AuthenticationService) Logout(ctx context.Context, claims *security.Claims, refreshToken string) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}

	if err := s.sessionRepository.BlacklistToken(ctx, claims.ID, claims.UserUUID, claims.ExpiresAt.Time); err != nil {
		return util.LogError("[AuthenticationService] не удалось занести токен в черный список", err)
	}

	if refreshToken != "" {
		if err := s.sessionRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
			log.Printf("[AuthenticationService] не удалось отозвать refresh токен: %v", err)
		}
	}

	return nil
}

// CurrentUser возвращает пользователя, которому принадлежит identity.
func (s *AuthenticationService) CurrentUser(ctx context.Context, claims *security.Claims) (*model.User, error) {
	if err := security.RequireAuthenticated(claims); err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByUUID(ctx, claims.UserUUID)
	if err != nil {
		return nil, util.LogError("[AuthenticationService] ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	return user, nil
}

func (s *AuthenticationService) issueTokens(ctx context.Context, user *model.User) (*model.TokensPair, error) {
	accessToken, _, err := s.jwtService.GenerateAccessToken(user.UUID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации access токена: %w", err)
	}

	refreshToken, err := s.sessionRepository.CreateRefreshToken(ctx, user.UUID)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания refresh токена: %w", err)
	}

	lifetime, err := s.jwtService.AccessTokenLifetime()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения срока жизни токена: %w", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(lifetime.Seconds()),
	}, nil
}
