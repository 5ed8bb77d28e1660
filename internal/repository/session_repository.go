package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/google/uuid"
)

// SessionRepository владеет записями черного списка access токенов
// и refresh токенами в Redis. Отзыв выражается отсутствием ключа:
// токен либо присутствует и активен, либо отсутствует.
// Ошибки хранилища поднимаются наверх как ErrStoreUnavailable —
// недоступный черный список нельзя трактовать как "ничего не отозвано".
type SessionRepository struct {
	cache      *CacheRepository
	refreshTTL time.Duration
}

func NewSessionRepository(cache *CacheRepository, refreshTTLDays int) *SessionRepository {
	return &SessionRepository{
		cache:      cache,
		refreshTTL: time.Duration(refreshTTLDays) * 24 * time.Hour,
	}
}

func blacklistKey(jti string) string {
	return fmt.Sprintf("blacklist:token:%s", jti)
}

func refreshKey(token string) string {
	return fmt.Sprintf("refresh:%s", token)
}

// BlacklistToken добавляет jti в черный список с TTL до естественного
// истечения токена, так что хранилище чистит себя само. Для уже
// истекшего токена запись живет 1 секунду: операция остается
// идемпотентной с последующей проверкой, но следов не оставляет.
func (r *SessionRepository) BlacklistToken(ctx context.Context, jti string, userUUID string, expiresAt time.Time) error {
	entry := model.BlacklistEntry{
		Jti:       jti,
		UserID:    userUUID,
		ExpiresAt: float64(expiresAt.Unix()),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("ошибка сериализации записи черного списка: %w", err)
	}

	ttl := time.Until(expiresAt)
	if ttl < time.Second {
		ttl = time.Second
	}

	if err := r.cache.Set(ctx, blacklistKey(jti), string(data), ttl); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *SessionRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := r.cache.Exists(ctx, blacklistKey(jti))
	if err != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return exists, nil
}

// CreateRefreshToken генерирует непрозрачный refresh токен и сохраняет
// его на настроенный срок (по умолчанию 7 дней).
func (r *SessionRepository) CreateRefreshToken(ctx context.Context, userUUID string) (string, error) {
	token := uuid.New().String()

	record := model.RefreshTokenRecord{
		Token:  token,
		UserID: userUUID,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации refresh токена: %w", err)
	}

	if err := r.cache.Set(ctx, refreshKey(token), string(data), r.refreshTTL); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	return token, nil
}

// ValidateRefreshToken возвращает UUID владельца токена.
// Отсутствующий или истекший токен — пустая строка без ошибки.
func (r *SessionRepository) ValidateRefreshToken(ctx context.Context, token string) (string, error) {
	data, err := r.cache.Get(ctx, refreshKey(token))
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	var record model.RefreshTokenRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		// Испорченная запись равносильна отсутствующей
		return "", nil
	}

	return record.UserID, nil
}

// RevokeRefreshToken удаляет запись; удаление отсутствующего ключа —
// успешный no-op.
func (r *SessionRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	if err := r.cache.Delete(ctx, refreshKey(token)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
