package ports

import (
	"context"

	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/security"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error
	SetActive(ctx context.Context, uuid string, active bool) error
	ListUsers(ctx context.Context) ([]*model.User, error)
}

type UserService interface {
	Register(ctx context.Context, req *requestresponse.RegisterRequest) (*model.User, error)
	GetUser(ctx context.Context, claims *security.Claims, uuid string) (*model.User, error)
	UpdateUser(ctx context.Context, claims *security.Claims, uuid string, req *requestresponse.UserUpdateRequest) (*model.User, error)
	ChangePassword(ctx context.Context, claims *security.Claims, oldPassword, newPassword string) error
	ListUsers(ctx context.Context, claims *security.Claims) ([]*model.User, error)
	DeactivateUser(ctx context.Context, claims *security.Claims, uuid string) error
	ActivateUser(ctx context.Context, claims *security.Claims, uuid string) (*model.User, error)
}
