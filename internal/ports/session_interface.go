package ports

import (
	"context"
	"time"
)

// SessionRepository : черный список access токенов и refresh токены в Redis
type SessionRepository interface {
	BlacklistToken(ctx context.Context, jti string, userUUID string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	CreateRefreshToken(ctx context.Context, userUUID string) (string, error)
	ValidateRefreshToken(ctx context.Context, token string) (string, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}
