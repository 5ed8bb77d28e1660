package ports

import (
	"context"

	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/security"
)

type JobRepository interface {
	Create(ctx context.Context, job *model.Job) (*model.Job, error)
	FindByUUID(ctx context.Context, uuid string) (*model.Job, error)
	ListByCreator(ctx context.Context, createdBy string) ([]*model.Job, error)
	ListAll(ctx context.Context) ([]*model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, uuid string) error
}

type JobService interface {
	CreateJob(ctx context.Context, claims *security.Claims, req *requestresponse.JobCreateRequest) (*model.Job, error)
	GetJob(ctx context.Context, uuid string) (*model.Job, error)
	ListJobs(ctx context.Context) ([]*model.Job, error)
	ListMyJobs(ctx context.Context, claims *security.Claims) ([]*model.Job, error)
	UpdateJob(ctx context.Context, claims *security.Claims, uuid string, req *requestresponse.JobUpdateRequest) (*model.Job, error)
	DeleteJob(ctx context.Context, claims *security.Claims, uuid string) error
}
