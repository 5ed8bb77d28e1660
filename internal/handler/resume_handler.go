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

type ResumeHandler struct {
	resumeService ports.ResumeService
}

func NewResumeHandler(resumeService ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// CreateUploadURL godoc
// @Summary Загрузка резюме
// @Description Регистрирует метаданные резюме и выдает presigned PUT URL для прямой загрузки файла в S3
// @Tags Resumes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param body body requestresponse.ResumeCreateRequest true "Метаданные файла"
// @Success 201 {object} requestresponse.ResumeUploadResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неподдерживаемый тип или размер файла"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/resumes [post]
func (h *ResumeHandler) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.ResumeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resume, ticket, err := h.resumeService.CreateUploadURL(r.Context(), claims, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusCreated, requestresponse.ResumeUploadResponse{
		ResumeUUID: resume.UUID,
		UploadURL:  ticket.UploadURL,
		S3Key:      ticket.S3Key,
	})
}

// GetDownloadURL godoc
// @Summary Скачивание резюме
// @Description Выдает presigned GET URL, доступно владельцу резюме и администратору
// @Tags Resumes
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID резюме"
// @Success 200 {object} requestresponse.ResumeDownloadResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/resumes/{uuid}/download [get]
func (h *ResumeHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	downloadURL, err := h.resumeService.GetDownloadURL(r.Context(), claims, chi.URLParam(r, "uuid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.ResumeDownloadResponse{DownloadURL: downloadURL})
}

// ListMyResumes godoc
// @Summary Резюме текущего пользователя
// @Tags Resumes
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Success 200 {array} model.Resume
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/resumes [get]
func (h *ResumeHandler) ListMyResumes(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	resumes, err := h.resumeService.ListMyResumes(r.Context(), claims)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, resumes)
}

// DeleteResume godoc
// @Summary Удаление резюме
// @Description Удаляет запись и файл в S3, доступно владельцу и администратору
// @Tags Resumes
// @Produce json
// @Param Authorization header string true "Bearer токен"
// @Param uuid path string true "UUID резюме"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/resumes/{uuid} [delete]
func (h *ResumeHandler) DeleteResume(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	if err := h.resumeService.DeleteResume(r.Context(), claims, chi.URLParam(r, "uuid")); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSONResponse(w, http.StatusOK, requestresponse.MessageResponse{Message: "Resume deleted successfully"})
}
