package service

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/ports"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/google/uuid"
)

// maxResumeSizeBytes — верхняя граница размера файла резюме (10 МБ).
const maxResumeSizeBytes = 10 << 20

var allowedResumeContentTypes = map[string]string{
	"application/pdf": ".pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

type ResumeService struct {
	resumeRepository ports.ResumeRepository
	s3Storage        ports.S3Storage
	bucket           string
	urlTTL           time.Duration
}

func NewResumeService(
	resumeRepository ports.ResumeRepository,
	s3Storage ports.S3Storage,
	bucket string,
	urlTTL time.Duration,
) *ResumeService {
	return &ResumeService{
		resumeRepository: resumeRepository,
		s3Storage:        s3Storage,
		bucket:           bucket,
		urlTTL:           urlTTL,
	}
}

// CreateUploadURL регистрирует метаданные резюме и выдает presigned PUT
// URL: файл уходит в S3 напрямую, минуя сервер.
func (s *ResumeService) CreateUploadURL(ctx context.Context, claims *security.Claims, req *requestresponse.ResumeCreateRequest) (*model.Resume, *model.ResumeUploadTicket, error) {
	if err := security.RequireAuthenticated(claims); err != nil {
		return nil, nil, err
	}

	ext, ok := allowedResumeContentTypes[req.ContentType]
	if !ok {
		return nil, nil, fmt.Errorf("%w: неподдерживаемый тип файла %s", apperrors.ErrInvalidOperation, req.ContentType)
	}
	if req.SizeBytes <= 0 || req.SizeBytes > maxResumeSizeBytes {
		return nil, nil, fmt.Errorf("%w: недопустимый размер файла", apperrors.ErrInvalidOperation)
	}
	if strings.TrimSpace(req.FilenameOriginal) == "" {
		return nil, nil, fmt.Errorf("%w: имя файла обязательно", apperrors.ErrInvalidOperation)
	}

	resumeUUID := uuid.New().String()
	s3Key := path.Join("resumes", resumeUUID+ext)

	resume := &model.Resume{
		UUID:             resumeUUID,
		OwnerUUID:        claims.UserUUID,
		FilenameOriginal: req.FilenameOriginal,
		ContentType:      req.ContentType,
		SizeBytes:        req.SizeBytes,
		S3Key:            s3Key,
		JobUUID:          req.JobUUID,
	}

	created, err := s.resumeRepository.Create(ctx, resume)
	if err != nil {
		return nil, nil, util.LogError("[ResumeService] ошибка создания записи резюме", err)
	}

	uploadURL, err := s.s3Storage.GeneratePresignedPutURL(ctx, s3Key, req.ContentType, s.urlTTL)
	if err != nil {
		return nil, nil, util.LogError("[ResumeService] ошибка генерации URL загрузки", err)
	}

	ticket := &model.ResumeUploadTicket{
		UploadURL: uploadURL,
		S3Key:     s3Key,
		Bucket:    s.bucket,
	}

	return created, ticket, nil
}

// GetDownloadURL выдает presigned GET URL. Доступно владельцу
// и администратору.
func (s *ResumeService) GetDownloadURL(ctx context.Context, claims *security.Claims, resumeUUID string) (string, error) {
	resume, err := s.resumeRepository.FindByUUID(ctx, resumeUUID)
	if err != nil {
		return "", util.LogError("[ResumeService] ошибка поиска резюме", err)
	}
	if resume == nil {
		return "", apperrors.ErrNotFound
	}

	if err := security.RequireOwnerOrAdmin(claims, resume.OwnerUUID); err != nil {
		return "", err
	}

	downloadURL, err := s.s3Storage.GeneratePresignedGetURL(ctx, resume.S3Key, s.urlTTL)
	if err != nil {
		return "", util.LogError("[ResumeService] ошибка генерации URL скачивания", err)
	}

	return downloadURL, nil
}

func (s *ResumeService) ListMyResumes(ctx context.Context, claims *security.Claims) ([]*model.Resume, error) {
	if err := security.RequireAuthenticated(claims); err != nil {
		return nil, err
	}

	resumes, err := s.resumeRepository.ListByOwner(ctx, claims.UserUUID)
	if err != nil {
		return nil, util.LogError("[ResumeService] ошибка получения списка резюме", err)
	}
	return resumes, nil
}

// DeleteResume удаляет запись и объект в S3. Неудача удаления объекта
// не откатывает удаление записи: осиротевший объект доживет
// до lifecycle-политики бакета.
func (s *ResumeService) DeleteResume(ctx context.Context, claims *security.Claims, resumeUUID string) error {
	resume, err := s.resumeRepository.FindByUUID(ctx, resumeUUID)
	if err != nil {
		return util.LogError("[ResumeService] ошибка поиска резюме", err)
	}
	if resume == nil {
		return apperrors.ErrNotFound
	}

	if err := security.RequireOwnerOrAdmin(claims, resume.OwnerUUID); err != nil {
		return err
	}

	if err := s.resumeRepository.Delete(ctx, resumeUUID); err != nil {
		return util.LogError("[ResumeService] ошибка удаления резюме", err)
	}

	if err := s.s3Storage.DeleteObject(ctx, resume.S3Key); err != nil {
		log.Printf("[ResumeService] не удалось удалить объект %s: %v", resume.S3Key, err)
	}

	return nil
}
