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

type ResumeRepository struct {
	*config.Database
}

func NewResumeRepository(database *config.Database) *ResumeRepository {
	return &ResumeRepository{database}
}

// Create : сохраняет метаданные резюме
func (r *ResumeRepository) Create(ctx context.Context, resume *model.Resume) (*model.Resume, error) {
	query := `
	INSERT INTO resumes (uuid, owner_uuid, filename_original, content_type, size_bytes, s3_key, job_uuid)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING uuid, owner_uuid, filename_original, content_type, size_bytes, s3_key, job_uuid, created_at, updated_at
	`

	created := &model.Resume{}
	err := r.DB.QueryRowxContext(ctx, query,
		resume.UUID,
		resume.OwnerUUID,
		resume.FilenameOriginal,
		resume.ContentType,
		resume.SizeBytes,
		resume.S3Key,
		resume.JobUUID,
	).StructScan(created)

	if err != nil {
		return nil, util.LogError("[ResumeRepo] ошибка вставки резюме в БД", err)
	}
	return created, nil
}

// FindByUUID : ищет резюме по UUID
func (r *ResumeRepository) FindByUUID(ctx context.Context, uuid string) (*model.Resume, error) {
	query := `SELECT uuid, owner_uuid, filename_original, content_type, size_bytes, s3_key, job_uuid, created_at, updated_at
		FROM resumes WHERE uuid = $1`
	var resume model.Resume
	err := sqlx.GetContext(ctx, r.DB, &resume, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[ResumeRepo] не удалось найти резюме", err)
	}
	return &resume, nil
}

// ListByOwner : резюме пользователя
func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerUUID string) ([]*model.Resume, error) {
	query := `SELECT uuid, owner_uuid, filename_original, content_type, size_bytes, s3_key, job_uuid, created_at, updated_at
		FROM resumes WHERE owner_uuid = $1 ORDER BY created_at DESC`

	var resumes []*model.Resume
	if err := sqlx.SelectContext(ctx, r.DB, &resumes, query, ownerUUID); err != nil {
		return nil, util.LogError("[ResumeRepo] не удалось получить резюме пользователя", err)
	}
	return resumes, nil
}

// Delete : удаляет запись резюме
func (r *ResumeRepository) Delete(ctx context.Context, uuid string) error {
	query := `DELETE FROM resumes WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid)
	if err != nil {
		return util.LogError("[ResumeRepo] не удалось удалить резюме", err)
	}
	return nil
}
