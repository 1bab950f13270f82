package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"nortetech-site/internal/api/middleware"
	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Redirect targets used in notices.
const (
	redirectLogin   = "/login/"
	redirectProfile = "/meu-perfil/"
	redirectCareers = "/carreiras/"
)

// FormatValidationErrors renders validator errors as field -> message.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		case "datetime":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a date formatted as %s", fieldName, fieldError.Param())
		case "candidate_status", "document_status", "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' has an unknown value", fieldName)
		}
	}
	return errorsMap
}

// bindJSON decodes the body into req and validates it. It answers 400 and returns
// false on failure.
func bindJSON(c *gin.Context, validate *validator.Validate, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return validateRequest(c, validate, req)
}

func validateRequest(c *gin.Context, validate *validator.Validate, req any) bool {
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

// uuidParam parses the path parameter name. It answers 400 and returns false on failure.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s format", name)})
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the authenticated user ID or answers 401.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "redirect": redirectLogin})
		return uuid.Nil, false
	}
	return userID, true
}

func respondNotice(c *gin.Context, status int, level, message, redirect string, data any) {
	c.JSON(status, dto.NoticeResponse{
		Notice: dto.Notice{Level: level, Message: message, Redirect: redirect},
		Data:   data,
	})
}

// respondError translates a service error into a status and an error notice.
// redirect is where the client should go back to.
func respondError(c *gin.Context, err error, action, redirect string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondNotice(c, http.StatusBadRequest, dto.NoticeError, err.Error(), redirect, nil)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrForbidden):
		// Forbidden is reported as not found so other people's records stay invisible.
		respondNotice(c, http.StatusNotFound, dto.NoticeError, "Registro não encontrado.", redirect, nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondNotice(c, http.StatusUnauthorized, dto.NoticeError, "E-mail ou senha inválidos.", redirectLogin, nil)
	case errors.Is(err, services.ErrConflict):
		respondNotice(c, http.StatusConflict, dto.NoticeError, "Registro já existe.", redirect, nil)
	case errors.Is(err, services.ErrUnsupportedFile):
		respondNotice(c, http.StatusUnsupportedMediaType, dto.NoticeError, "Tipo de arquivo não permitido.", redirect, nil)
	case errors.Is(err, services.ErrFileTooLarge):
		respondNotice(c, http.StatusRequestEntityTooLarge, dto.NoticeError, "Arquivo muito grande.", redirect, nil)
	case errors.Is(err, services.ErrInvalidState):
		respondNotice(c, http.StatusConflict, dto.NoticeError, err.Error(), redirect, nil)
	default:
		log.Printf("Error %s: %v", action, err)
		respondNotice(c, http.StatusInternalServerError, dto.NoticeError, "Erro interno. Tente novamente mais tarde.", redirect, nil)
	}
}

// MapUserToResponse converts a models.User to a dto.UserResponse
func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
