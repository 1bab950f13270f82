package handlers

import (
	"context"
	"net/http"

	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProfileHandler serves the candidate's "my profile" area.
type ProfileHandler struct {
	service   services.ProfileService
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validate}
}

// GetProfile godoc
// @Summary      Get my profile
// @Description  Returns the profile, the résumé lists and whether the profile allows applying.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Router       /meu-perfil/ [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "fetching profile", "/")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update my profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile body      dto.UpdateProfileRequest true "Profile fields"
// @Success      200  {object}  dto.NoticeResponse{data=models.Profile}
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /meu-perfil/ [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "updating profile", redirectProfile)
		return
	}
	respondNotice(c, http.StatusOK, dto.NoticeSuccess, "Perfil atualizado com sucesso!", redirectProfile, profile)
}

// UploadResume godoc
// @Summary      Upload my résumé
// @Description  Multipart upload of a PDF résumé in the "file" field.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData  file true "Résumé (PDF)"
// @Success      200  {object}  dto.NoticeResponse{data=models.Profile}
// @Failure      400  {object}  dto.NoticeResponse "Missing file"
// @Failure      413  {object}  dto.NoticeResponse "File too large"
// @Failure      415  {object}  dto.NoticeResponse "Not a PDF"
// @Router       /meu-perfil/curriculo/ [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondNotice(c, http.StatusBadRequest, dto.NoticeError, "Selecione o arquivo do currículo.", redirectProfile, nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err, "opening uploaded resume", redirectProfile)
		return
	}
	defer file.Close()

	profile, err := h.service.UploadResume(c.Request.Context(), userID, file)
	if err != nil {
		respondError(c, err, "uploading resume", redirectProfile)
		return
	}
	respondNotice(c, http.StatusOK, dto.NoticeSuccess, "Currículo enviado com sucesso!", redirectProfile, profile)
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        education body      dto.AddEducationRequest true "Education"
// @Success      201  {object}  dto.NoticeResponse{data=models.Education}
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /meu-perfil/formacao/adicionar/ [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AddEducationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	e, err := h.service.AddEducation(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "adding education", redirectProfile)
		return
	}
	respondNotice(c, http.StatusCreated, dto.NoticeSuccess, "Formação adicionada!", redirectProfile, e)
}

// DeleteEducation godoc
// @Summary      Delete an education entry
// @Tags         profile
// @Produce      json
// @Param        id path string true "Education ID" Format(uuid)
// @Success      200  {object}  dto.NoticeResponse
// @Failure      404  {object}  dto.NoticeResponse "Not found or not owned"
// @Router       /meu-perfil/formacao/deletar/{id}/ [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	h.deleteEntry(c, h.service.DeleteEducation, "Formação removida.")
}

// AddExperience godoc
// @Summary      Add an experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        experience body      dto.AddExperienceRequest true "Experience"
// @Success      201  {object}  dto.NoticeResponse{data=models.Experience}
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /meu-perfil/experiencia/adicionar/ [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AddExperienceRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	e, err := h.service.AddExperience(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "adding experience", redirectProfile)
		return
	}
	respondNotice(c, http.StatusCreated, dto.NoticeSuccess, "Experiência adicionada!", redirectProfile, e)
}

// DeleteExperience godoc
// @Summary      Delete an experience entry
// @Tags         profile
// @Produce      json
// @Param        id path string true "Experience ID" Format(uuid)
// @Success      200  {object}  dto.NoticeResponse
// @Failure      404  {object}  dto.NoticeResponse "Not found or not owned"
// @Router       /meu-perfil/experiencia/deletar/{id}/ [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	h.deleteEntry(c, h.service.DeleteExperience, "Experiência removida.")
}

// AddCourse godoc
// @Summary      Add an extra course
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        course body      dto.AddCourseRequest true "Course"
// @Success      201  {object}  dto.NoticeResponse{data=models.Course}
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /meu-perfil/curso/adicionar/ [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddCourse(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AddCourseRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	course, err := h.service.AddCourse(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "adding course", redirectProfile)
		return
	}
	respondNotice(c, http.StatusCreated, dto.NoticeSuccess, "Curso adicionado!", redirectProfile, course)
}

// DeleteCourse godoc
// @Summary      Delete an extra course
// @Tags         profile
// @Produce      json
// @Param        id path string true "Course ID" Format(uuid)
// @Success      200  {object}  dto.NoticeResponse
// @Failure      404  {object}  dto.NoticeResponse "Not found or not owned"
// @Router       /meu-perfil/curso/deletar/{id}/ [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteCourse(c *gin.Context) {
	h.deleteEntry(c, h.service.DeleteCourse, "Curso removido.")
}

func (h *ProfileHandler) deleteEntry(c *gin.Context, del func(ctx context.Context, userID, id uuid.UUID) error, message string) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := del(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "deleting resume entry", redirectProfile)
		return
	}
	respondNotice(c, http.StatusOK, dto.NoticeSuccess, message, redirectProfile, nil)
}
