package ports

import (
	"time"

	"github.com/Kumarsatwik/evaluv/internal/security"
)

type JWTServiceInterface interface {
	GenerateAccessToken(userUUID string, role string) (string, *security.Claims, error)
	ValidateJWT(tokenString string) (*security.Claims, error)
	AccessTokenLifetime() (time.Duration, error)
}
