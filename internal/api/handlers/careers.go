package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// CareersHandler serves the public job list and the application flow.
type CareersHandler struct {
	service   services.CareersService
	publicURL string
}

// NewCareersHandler creates a new CareersHandler.
func NewCareersHandler(service services.CareersService, publicURL string) *CareersHandler {
	return &CareersHandler{service: service, publicURL: publicURL}
}

// ListOpenJobs godoc
// @Summary      List open jobs
// @Description  Every published job, no pagination.
// @Tags         careers
// @Produce      json
// @Success      200  {array}   models.Job
// @Failure      500  {object}  dto.NoticeResponse "Internal Server Error"
// @Router       /carreiras/ [get]
func (h *CareersHandler) ListOpenJobs(c *gin.Context) {
	jobs, err := h.service.ListOpenJobs(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing open jobs", "/")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates an application from the caller's profile. An incomplete profile
// @Description  redirects to the profile page; a repeated application is answered with a warning.
// @Tags         careers
// @Produce      json
// @Param        job_id path string true "Job ID" Format(uuid)
// @Success      201  {object}  dto.NoticeResponse{data=dto.ApplicationResponse} "Application sent"
// @Success      200  {object}  dto.NoticeResponse "Already applied (warning)"
// @Failure      404  {object}  dto.NoticeResponse "Job not found or closed"
// @Failure      422  {object}  dto.NoticeResponse "Profile incomplete"
// @Failure      429  {object}  map[string]string "Too many requests"
// @Router       /carreiras/aplicar/{job_id}/ [post]
// @Security     BearerAuth
func (h *CareersHandler) Apply(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := uuidParam(c, "job_id")
	if !ok {
		return
	}

	candidate, err := h.service.Apply(c.Request.Context(), userID, jobID)
	switch {
	case err == nil:
		msg := fmt.Sprintf("Sucesso! Sua candidatura para %s foi enviada.", candidate.JobDisplay())
		respondNotice(c, http.StatusCreated, dto.NoticeSuccess, msg, redirectCareers, h.application(candidate))
	case errors.Is(err, services.ErrIncompleteProfile):
		respondNotice(c, http.StatusUnprocessableEntity, dto.NoticeWarning,
			"Seu perfil está incompleto. Preencha nome, telefone e anexe seu Currículo (PDF) para se candidatar.", redirectProfile, nil)
	case errors.Is(err, services.ErrDuplicateApplication):
		respondNotice(c, http.StatusOK, dto.NoticeWarning, "Você já se candidatou para esta vaga.", redirectCareers, nil)
	default:
		respondError(c, err, "applying to job", redirectCareers)
	}
}

// ListMyApplications godoc
// @Summary      List my applications
// @Description  The caller's applications with their onboarding links.
// @Tags         careers
// @Produce      json
// @Success      200  {array}   dto.ApplicationResponse
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Router       /carreiras/minhas-candidaturas/ [get]
// @Security     BearerAuth
func (h *CareersHandler) ListMyApplications(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	candidates, err := h.service.ListMyApplications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "listing applications", redirectCareers)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(candidates))
	for _, cand := range candidates {
		resp = append(resp, h.application(&cand))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CareersHandler) application(cand *models.Candidate) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:            cand.ID,
		JobDisplay:    cand.JobDisplay(),
		Status:        cand.Status,
		SentAt:        cand.SentAt.Format(time.RFC3339),
		OnboardingURL: services.OnboardingURL(h.publicURL, cand.ID),
	}
}
