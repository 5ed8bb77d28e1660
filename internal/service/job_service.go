package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/ports"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/google/uuid"
)

// notifyTimeout ограничивает фоновую отправку события,
// чтобы зависший брокер не копил горутины.
const notifyTimeout = 5 * time.Second

type JobService struct {
	jobRepository ports.JobRepository
	notifier      ports.EmbeddingNotifier
}

func NewJobService(jobRepository ports.JobRepository, notifier ports.EmbeddingNotifier) *JobService {
	return &JobService{
		jobRepository: jobRepository,
		notifier:      notifier,
	}
}

// CreateJob создает вакансию от имени аутентифицированного пользователя
// и асинхронно уведомляет сервис эмбеддингов.
func (s *JobService) CreateJob(ctx context.Context, claims *security.Claims, req *requestresponse.JobCreateRequest) (*model.Job, error) {
	if err := security.RequireAuthenticated(claims); err != nil {
		return nil, err
	}

	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("%w: title и description обязательны", apperrors.ErrInvalidOperation)
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = "full-time"
	}

	job := &model.Job{
		UUID:        uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		JobType:     jobType,
		Status:      "active",
		CreatedBy:   claims.UserUUID,
	}

	created, err := s.jobRepository.Create(ctx, job)
	if err != nil {
		return nil, util.LogError("[JobService] ошибка создания вакансии", err)
	}

	s.notifyUpserted(created.UUID)
	return created, nil
}

// GetJob возвращает вакансию по UUID. Чтение публично.
func (s *JobService) GetJob(ctx context.Context, jobUUID string) (*model.Job, error) {
	job, err := s.jobRepository.FindByUUID(ctx, jobUUID)
	if err != nil {
		return nil, util.LogError("[JobService] ошибка поиска вакансии", err)
	}
	if job == nil {
		return nil, apperrors.ErrNotFound
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context) ([]*model.Job, error) {
	jobs, err := s.jobRepository.ListAll(ctx)
	if err != nil {
		return nil, util.LogError("[JobService] ошибка получения списка вакансий", err)
	}
	return jobs, nil
}

func (s *JobService) ListMyJobs(ctx context.Context, claims *security.Claims) ([]*model.Job, error) {
	if err := security.RequireAuthenticated(claims); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepository.ListByCreator(ctx, claims.UserUUID)
	if err != nil {
		return nil, util.LogError("[JobService] ошибка получения вакансий пользователя", err)
	}
	return jobs, nil
}

// UpdateJob изменяет вакансию. Доступно создателю и администратору.
func (s *JobService) UpdateJob(ctx context.Context, claims *security.Claims, jobUUID string, req *requestresponse.JobUpdateRequest) (*model.Job, error) {
	job, err := s.jobRepository.FindByUUID(ctx, jobUUID)
	if err != nil {
		return nil, util.LogError("[JobService] ошибка поиска вакансии", err)
	}
	if job == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := security.RequireOwnerOrAdmin(claims, job.CreatedBy); err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.jobRepository.Update(ctx, job); err != nil {
		return nil, util.LogError("[JobService] ошибка обновления вакансии", err)
	}

	s.notifyUpserted(job.UUID)
	return job, nil
}

// DeleteJob удаляет вакансию. Доступно создателю и администратору.
func (s *JobService) DeleteJob(ctx context.Context, claims *security.Claims, jobUUID string) error {
	job, err := s.jobRepository.FindByUUID(ctx, jobUUID)
	if err != nil {
		return util.LogError("[JobService] ошибка поиска вакансии", err)
	}
	if job == nil {
		return apperrors.ErrNotFound
	}

	if err := security.RequireOwnerOrAdmin(claims, job.CreatedBy); err != nil {
		return err
	}

	if err := s.jobRepository.Delete(ctx, jobUUID); err != nil {
		return util.LogError("[JobService] ошибка удаления вакансии", err)
	}

	s.notifyDeleted(jobUUID)
	return nil
}

// notifyUpserted отправляет событие в фоне: мутация вакансии
// не зависит от доступности брокера.
func (s *JobService) notifyUpserted(jobUUID string) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.JobUpserted(ctx, jobUUID); err != nil {
			log.Printf("[JobService] не удалось отправить событие job_upserted: %v", err)
		}
	}()
}

func (s *JobService) notifyDeleted(jobUUID string) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.JobDeleted(ctx, jobUUID); err != nil {
			log.Printf("[JobService] не удалось отправить событие job_deleted: %v", err)
		}
	}()
}
