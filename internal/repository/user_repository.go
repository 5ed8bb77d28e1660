package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Kumarsatwik/evaluv/config"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, email, username, full_name, password_hash, role, is_active, is_verified)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING uuid, email, username, full_name, role, is_active, is_verified, created_at, updated_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UUID,
		user.Email,
		user.Username,
		user.FullName,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.IsVerified,
	).StructScan(createdUser)

	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, email, username, full_name, password_hash, role, is_active, is_verified, created_at, updated_at
		FROM users WHERE uuid = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByUsername : ищет пользователя по username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT uuid, email, username, full_name, password_hash, role, is_active, is_verified, created_at, updated_at
		FROM users WHERE username = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по username", err)
	}
	return &user, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, email, username, full_name, password_hash, role, is_active, is_verified, created_at, updated_at
		FROM users WHERE email = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// UpdateUser : обновляет изменяемые поля пользователя
func (r *UserRepository) UpdateUser(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET email = $2, username = $3, full_name = $4, updated_at = NOW()
		WHERE uuid = $1
	`
	_, err := r.DB.ExecContext(ctx, query, user.UUID, user.Email, user.Username, user.FullName)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пользователя", err)
	}
	return nil
}

// UpdatePassword : меняет пароль пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пароль", err)
	}
	return nil
}

// SetActive : включает или выключает пользователя
func (r *UserRepository) SetActive(ctx context.Context, uuid string, active bool) error {
	query := `UPDATE users SET is_active = $2, updated_at = NOW() WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, active)
	if err != nil {
		return util.LogError("[UserRepo] не удалось изменить статус пользователя", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] не удалось проверить изменение статуса", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListUsers : вывод списка пользователей
func (r *UserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	query := `SELECT uuid, email, username, full_name, password_hash, role, is_active, is_verified, created_at, updated_at
		FROM users ORDER BY created_at ASC`

	var users []*model.User
	if err := sqlx.SelectContext(ctx, r.DB, &users, query); err != nil {
		return nil, util.LogError("[UserRepo] не удалось получить список пользователей", err)
	}
	return users, nil
}
