package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

// MockJobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	args := m.Called(ctx, job)
	if j, ok := args.Get(0).(*model.Job); ok {
		return j, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobRepository) FindByUUID(ctx context.Context, uuid string) (*model.Job, error) {
	args := m.Called(ctx, uuid)
	if j, ok := args.Get(0).(*model.Job); ok {
		return j, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobRepository) ListByCreator(ctx context.Context, createdBy string) ([]*model.Job, error) {
	args := m.Called(ctx, createdBy)
	if jobs, ok := args.Get(0).([]*model.Job); ok {
		return jobs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobRepository) ListAll(ctx context.Context) ([]*model.Job, error) {
	args := m.Called(ctx)
	if jobs, ok := args.Get(0).([]*model.Job); ok {
		return jobs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// recordingNotifier собирает события в канал, отправка идет из горутин
type recordingNotifier struct {
	events chan string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{events: make(chan string, 8)}
}

func (n *recordingNotifier) JobUpserted(ctx context.Context, jobUUID string) error {
	n.events <- "upserted:" + jobUUID
	return nil
}

func (n *recordingNotifier) JobDeleted(ctx context.Context, jobUUID string) error {
	n.events <- "deleted:" + jobUUID
	return nil
}

func (n *recordingNotifier) Close() error { return nil }

func (n *recordingNotifier) waitEvent(t *testing.T) string {
	t.Helper()
	select {
	case event := <-n.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("событие не пришло")
		return ""
	}
}

// ===== TESTS =====

func TestCreateJob(t *testing.T) {
	jobRepo := new(MockJobRepository)
	notifier := newRecordingNotifier()

	jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(j *model.Job) bool {
		return j.Title == "Go разработчик" && j.CreatedBy == "u-1" && j.Status == "active"
	})).Return(&model.Job{UUID: "j-1", Title: "Go разработчик", CreatedBy: "u-1", Status: "active"}, nil)

	jobService := service.NewJobService(jobRepo, notifier)

	job, err := jobService.CreateJob(context.Background(), regularClaims("u-1"), &requestresponse.JobCreateRequest{
		Title:       "Go разработчик",
		Description: "Разработка backend сервисов",
		Skills:      "Go, PostgreSQL, Redis",
	})
	require.NoError(t, err)
	assert.Equal(t, "j-1", job.UUID)

	assert.Equal(t, "upserted:j-1", notifier.waitEvent(t))
}

func TestCreateJob_Anonymous(t *testing.T) {
	jobService := service.NewJobService(new(MockJobRepository), newRecordingNotifier())

	_, err := jobService.CreateJob(context.Background(), nil, &requestresponse.JobCreateRequest{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestCreateJob_MissingFields(t *testing.T) {
	jobService := service.NewJobService(new(MockJobRepository), newRecordingNotifier())

	_, err := jobService.CreateJob(context.Background(), regularClaims("u-1"), &requestresponse.JobCreateRequest{Title: "only title"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)
}

func TestGetJob_NotFound(t *testing.T) {
	jobRepo := new(MockJobRepository)
	jobRepo.On("FindByUUID", mock.Anything, "ghost").Return(nil, nil)

	jobService := service.NewJobService(jobRepo, newRecordingNotifier())

	_, err := jobService.GetJob(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateJob_AccessMatrix(t *testing.T) {
	owned := func() *model.Job {
		return &model.Job{UUID: "j-1", Title: "old", CreatedBy: "owner"}
	}
	newTitle := "new title"

	t.Run("владелец может", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		notifier := newRecordingNotifier()
		jobRepo.On("FindByUUID", mock.Anything, "j-1").Return(owned(), nil)
		jobRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		jobService := service.NewJobService(jobRepo, notifier)
		job, err := jobService.UpdateJob(context.Background(), regularClaims("owner"), "j-1", &requestresponse.JobUpdateRequest{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "new title", job.Title)
		assert.Equal(t, "upserted:j-1", notifier.waitEvent(t))
	})

	t.Run("администратор может", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		jobRepo.On("FindByUUID", mock.Anything, "j-1").Return(owned(), nil)
		jobRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		jobService := service.NewJobService(jobRepo, newRecordingNotifier())
		_, err := jobService.UpdateJob(context.Background(), adminClaims("a-1"), "j-1", &requestresponse.JobUpdateRequest{Title: &newTitle})
		assert.NoError(t, err)
	})

	t.Run("чужой пользователь не может", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		jobRepo.On("FindByUUID", mock.Anything, "j-1").Return(owned(), nil)

		jobService := service.NewJobService(jobRepo, newRecordingNotifier())
		_, err := jobService.UpdateJob(context.Background(), regularClaims("intruder"), "j-1", &requestresponse.JobUpdateRequest{Title: &newTitle})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("аноним не может", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		jobRepo.On("FindByUUID", mock.Anything, "j-1").Return(owned(), nil)

		jobService := service.NewJobService(jobRepo, newRecordingNotifier())
		_, err := jobService.UpdateJob(context.Background(), nil, "j-1", &requestresponse.JobUpdateRequest{Title: &newTitle})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestDeleteJob(t *testing.T) {
	jobRepo := new(MockJobRepository)
	notifier := newRecordingNotifier()

	jobRepo.On("FindByUUID", mock.Anything, "j-1").Return(&model.Job{UUID: "j-1", CreatedBy: "owner"}, nil)
	jobRepo.On("Delete", mock.Anything, "j-1").Return(nil)

	jobService := service.NewJobService(jobRepo, notifier)

	require.NoError(t, jobService.DeleteJob(context.Background(), regularClaims("owner"), "j-1"))
	assert.Equal(t, "deleted:j-1", notifier.waitEvent(t))
}

func TestDeleteJob_Forbidden(t *testing.T) {
	jobRepo := new(MockJobRepository)
	jobRepo.On("FindByUUID", mock.Anything, "j-1").Return(&model.Job{UUID: "j-1", CreatedBy: "owner"}, nil)

	jobService := service.NewJobService(jobRepo, newRecordingNotifier())

	err := jobService.DeleteJob(context.Background(), regularClaims("intruder"), "j-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListMyJobs(t *testing.T) {
	jobRepo := new(MockJobRepository)
	jobRepo.On("ListByCreator", mock.Anything, "u-1").Return([]*model.Job{{UUID: "j-1"}}, nil)

	jobService := service.NewJobService(jobRepo, newRecordingNotifier())

	jobs, err := jobService.ListMyJobs(context.Background(), regularClaims("u-1"))
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	_, err = jobService.ListMyJobs(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
