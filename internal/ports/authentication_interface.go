package ports

import (
	"context"

	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/security"
)

type AuthenticationService interface {
	Login(ctx context.Context, username, password string) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, claims *security.Claims, refreshToken string) error
	CurrentUser(ctx context.Context, claims *security.Claims) (*model.User, error)
}
