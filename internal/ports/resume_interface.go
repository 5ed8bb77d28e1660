package ports

import (
	"context"

	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/security"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) (*model.Resume, error)
	FindByUUID(ctx context.Context, uuid string) (*model.Resume, error)
	ListByOwner(ctx context.Context, ownerUUID string) ([]*model.Resume, error)
	Delete(ctx context.Context, uuid string) error
}

type ResumeService interface {
	CreateUploadURL(ctx context.Context, claims *security.Claims, req *requestresponse.ResumeCreateRequest) (*model.Resume, *model.ResumeUploadTicket, error)
	GetDownloadURL(ctx context.Context, claims *security.Claims, resumeUUID string) (string, error)
	ListMyResumes(ctx context.Context, claims *security.Claims) ([]*model.Resume, error)
	DeleteResume(ctx context.Context, claims *security.Claims, resumeUUID string) error
}
