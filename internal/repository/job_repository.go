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

type JobRepository struct {
	*config.Database
}

func NewJobRepository(database *config.Database) *JobRepository {
	return &JobRepository{database}
}

// Create : сохраняет новую вакансию
func (r *JobRepository) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	query := `
	INSERT INTO jobs (uuid, title, description, skills, experience, location, salary_range, job_type, status, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING uuid, title, description, skills, experience, location, salary_range, job_type, status, created_by, created_at, updated_at
	`

	created := &model.Job{}
	err := r.DB.QueryRowxContext(ctx, query,
		job.UUID,
		job.Title,
		job.Description,
		job.Skills,
		job.Experience,
		job.Location,
		job.SalaryRange,
		job.JobType,
		job.Status,
		job.CreatedBy,
	).StructScan(created)

	if err != nil {
		return nil, util.LogError("[JobRepo] ошибка вставки вакансии в БД", err)
	}
	return created, nil
}

// FindByUUID : ищет вакансию по UUID
func (r *JobRepository) FindByUUID(ctx context.Context, uuid string) (*model.Job, error) {
	query := `SELECT uuid, title, description, skills, experience, location, salary_range, job_type, status, created_by, created_at, updated_at
		FROM jobs WHERE uuid = $1`
	var job model.Job
	err := sqlx.GetContext(ctx, r.DB, &job, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[JobRepo] не удалось найти вакансию", err)
	}
	return &job, nil
}

// ListByCreator : вакансии пользователя
func (r *JobRepository) ListByCreator(ctx context.Context, createdBy string) ([]*model.Job, error) {
	query := `SELECT uuid, title, description, skills, experience, location, salary_range, job_type, status, created_by, created_at, updated_at
		FROM jobs WHERE created_by = $1 ORDER BY created_at DESC`

	var jobs []*model.Job
	if err := sqlx.SelectContext(ctx, r.DB, &jobs, query, createdBy); err != nil {
		return nil, util.LogError("[JobRepo] не удалось получить вакансии пользователя", err)
	}
	return jobs, nil
}

// ListAll : все вакансии
func (r *JobRepository) ListAll(ctx context.Context) ([]*model.Job, error) {
	query := `SELECT uuid, title, description, skills, experience, location, salary_range, job_type, status, created_by, created_at, updated_at
		FROM jobs ORDER BY created_at DESC`

	var jobs []*model.Job
	if err := sqlx.SelectContext(ctx, r.DB, &jobs, query); err != nil {
		return nil, util.LogError("[JobRepo] не удалось получить список вакансий", err)
	}
	return jobs, nil
}

// Update : обновляет вакансию
func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, skills = $4, experience = $5,
		    location = $6, salary_range = $7, job_type = $8, status = $9, updated_at = NOW()
		WHERE uuid = $1
	`
	_, err := r.DB.ExecContext(ctx, query,
		job.UUID, job.Title, job.Description, job.Skills, job.Experience,
		job.Location, job.SalaryRange, job.JobType, job.Status)
	if err != nil {
		return util.LogError("[JobRepo] не удалось обновить вакансию", err)
	}
	return nil
}

// Delete : удаляет вакансию по UUID
func (r *JobRepository) Delete(ctx context.Context, uuid string) error {
	query := `DELETE FROM jobs WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid)
	if err != nil {
		return util.LogError("[JobRepo] не удалось удалить вакансию", err)
	}
	return nil
}
