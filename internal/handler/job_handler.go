package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kumarsatwik/evaluv/internal/model/requestresponse"
	"github.com/Kumarsatwik/evaluv/internal/ports"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJob godoc
// @Summary Создание вакансии
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param body body requestresponse.JobCreateRequest true "Данные вакансии"
// @Success 201 {object} model.Job
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/jobs [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), claims, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusCreated, job)
}

// GetJob godoc
// @Summary Получение вакансии по UUID
// @Description Чтение вакансии публично
// @Tags Jobs
// @Produce json
// @Param uuid path string true "UUID вакансии"
// @Success 200 {object} model.Job
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/jobs/{uuid} [get]
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.GetJob(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, job)
}

// ListJobs godoc
// @Summary Список вакансий
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.Job
// @Router /api/jobs [get]
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListJobs(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, jobs)
}

// ListMyJobs godoc
// @Summary Вакансии текущего пользователя
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Success 200 {array} model.Job
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/jobs/my [get]
func (h *JobHandler) ListMyJobs(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	jobs, err := h.jobService.ListMyJobs(r.Context(), claims)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, jobs)
}

// UpdateJob godoc
// @Summary Обновление вакансии
// @Description Доступно создателю вакансии и администратору
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID вакансии"
// @Param body body requestresponse.JobUpdateRequest true "Изменяемые поля"
// @Success 200 {object} model.Job
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/jobs/{uuid} [patch]
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.JobUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobService.UpdateJob(r.Context(), claims, chi.URLParam(r, "uuid"), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Удаление вакансии
// @Description Доступно создателю вакансии и администратору
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID вакансии"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/jobs/{uuid} [delete]
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	if err := h.jobService.DeleteJob(r.Context(), claims, chi.URLParam(r, "uuid")); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.MessageResponse{Message: "Job deleted successfully"})
}
