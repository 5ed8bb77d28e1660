package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	args := m.Called(ctx, uuid, newPasswordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, uuid string, active bool) error {
	args := m.Called(ctx, uuid, active)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) BlacklistToken(ctx context.Context, jti string, userUUID string, expiresAt time.Time) error {
	args := m.Called(ctx, jti, userUUID, expiresAt)
	return args.Error(0)
}

func (m *MockSessionRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) CreateRefreshToken(ctx context.Context, userUUID string) (string, error) {
	args := m.Called(ctx, userUUID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) ValidateRefreshToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateAccessToken(userUUID string, role string) (string, *security.Claims, error) {
	args := m.Called(userUUID, role)

	var claims *security.Claims
	if c := args.Get(1); c != nil {
		claims = c.(*security.Claims)
	}
	return args.String(0), claims, args.Error(2)
}

func (m *MockJWTService) ValidateJWT(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) AccessTokenLifetime() (time.Duration, error) {
	args := m.Called()
	return args.Get(0).(time.Duration), args.Error(1)
}

// ===== TESTS =====

func activeUser(uuid, username, password string) *model.User {
	hash, _ := security.HashPassword(password)
	return &model.User{
		UUID:         uuid,
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleUser,
		IsActive:     true,
	}
}

func testClaims(userUUID string) *security.Claims {
	return &security.Claims{
		UserUUID: userUUID,
		Role:     model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			Subject:   userUUID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	jwtService := new(MockJWTService)

	user := activeUser("u-1", "alice", "CorrectPass1!")

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	jwtService.On("GenerateAccessToken", "u-1", model.RoleUser).Return("access-token", testClaims("u-1"), nil)
	sessionRepo.On("CreateRefreshToken", mock.Anything, "u-1").Return("refresh-token", nil)
	jwtService.On("AccessTokenLifetime").Return(30*time.Minute, nil)

	authService := service.NewAuthenticationService(jwtService, sessionRepo, userRepo)

	tokens, err := authService.Login(context.Background(), "alice", "CorrectPass1!")
	require.NoError(t, err)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
	assert.Equal(t, int64(1800), tokens.ExpiresIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(activeUser("u-1", "alice", "CorrectPass1!"), nil)

	authService := service.NewAuthenticationService(new(MockJWTService), new(MockSessionRepository), userRepo)

	_, err := authService.Login(context.Background(), "alice", "WrongPass1!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	authService := service.NewAuthenticationService(new(MockJWTService), new(MockSessionRepository), userRepo)

	// Неизвестный логин наружу неотличим от неверного пароля
	_, err := authService.Login(context.Background(), "ghost", "AnyPass1!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DeactivatedUser(t *testing.T) {
	userRepo := new(MockUserRepository)

	user := activeUser("u-1", "alice", "CorrectPass1!")
	user.IsActive = false
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

	authService := service.NewAuthenticationService(new(MockJWTService), new(MockSessionRepository), userRepo)

	_, err := authService.Login(context.Background(), "alice", "CorrectPass1!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	jwtService := new(MockJWTService)

	user := activeUser("u-1", "alice", "CorrectPass1!")

	sessionRepo.On("ValidateRefreshToken", mock.Anything, "old-refresh").Return("u-1", nil)
	userRepo.On("FindByUUID", mock.Anything, "u-1").Return(user, nil)
	jwtService.On("GenerateAccessToken", "u-1", model.RoleUser).Return("new-access", testClaims("u-1"), nil)
	sessionRepo.On("CreateRefreshToken", mock.Anything, "u-1").Return("new-refresh", nil)
	jwtService.On("AccessTokenLifetime").Return(30*time.Minute, nil)
	sessionRepo.On("RevokeRefreshToken", mock.Anything, "old-refresh").Return(nil)

	authService := service.NewAuthenticationService(jwtService, sessionRepo, userRepo)

	tokens, err := authService.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)

	// Использованный refresh токен ротируется
	sessionRepo.AssertCalled(t, "RevokeRefreshToken", mock.Anything, "old-refresh")
}

func TestRefresh_UnknownToken(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("ValidateRefreshToken", mock.Anything, "unknown").Return("", nil)

	authService := service.NewAuthenticationService(new(MockJWTService), sessionRepo, new(MockUserRepository))

	_, err := authService.Refresh(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefresh_StoreUnavailable(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("ValidateRefreshToken", mock.Anything, "any").Return("", apperrors.ErrStoreUnavailable)

	authService := service.NewAuthenticationService(new(MockJWTService), sessionRepo, new(MockUserRepository))

	_, err := authService.Refresh(context.Background(), "any")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestLogout_BlacklistsAccessToken(t *testing.T) {
	sessionRepo := new(MockSessionRepository)

	claims := testClaims("u-1")
	sessionRepo.On("BlacklistToken", mock.Anything, "jti-1", "u-1", claims.ExpiresAt.Time).Return(nil)

	authService := service.NewAuthenticationService(new(MockJWTService), sessionRepo, new(MockUserRepository))

	require.NoError(t, authService.Logout(context.Background(), claims, ""))
	sessionRepo.AssertCalled(t, "BlacklistToken", mock.Anything, "jti-1", "u-1", claims.ExpiresAt.Time)
	sessionRepo.AssertNotCalled(t, "RevokeRefreshToken", mock.Anything, mock.Anything)
}

func TestLogout_WithRefreshToken(t *testing.T) {
	sessionRepo := new(MockSessionRepository)

	claims := testClaims("u-1")
	sessionRepo.On("BlacklistToken", mock.Anything, "jti-1", "u-1", claims.ExpiresAt.Time).Return(nil)
	sessionRepo.On("RevokeRefreshToken", mock.Anything, "refresh-1").Return(nil)

	authService := service.NewAuthenticationService(new(MockJWTService), sessionRepo, new(MockUserRepository))

	require.NoError(t, authService.Logout(context.Background(), claims, "refresh-1"))
	sessionRepo.AssertCalled(t, "RevokeRefreshToken", mock.Anything, "refresh-1")
}

func TestLogout_StoreUnavailable(t *testing.T) {
	sessionRepo := new(MockSessionRepository)

	claims := testClaims("u-1")
	sessionRepo.On("BlacklistToken", mock.Anything, "jti-1", "u-1", claims.ExpiresAt.Time).Return(apperrors.ErrStoreUnavailable)

	authService := service.NewAuthenticationService(new(MockJWTService), sessionRepo, new(MockUserRepository))

	err := authService.Logout(context.Background(), claims, "")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestCurrentUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	user := activeUser("u-1", "alice", "CorrectPass1!")
	userRepo.On("FindByUUID", mock.Anything, "u-1").Return(user, nil)

	authService := service.NewAuthenticationService(new(MockJWTService), new(MockSessionRepository), userRepo)

	found, err := authService.CurrentUser(context.Background(), testClaims("u-1"))
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
}

func TestCurrentUser_Anonymous(t *testing.T) {
	authService := service.NewAuthenticationService(new(MockJWTService), new(MockSessionRepository), new(MockUserRepository))

	_, err := authService.CurrentUser(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
