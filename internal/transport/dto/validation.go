package dto

import (
	"nortetech-site/internal/models"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the domain tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("candidate_status", func(fl validator.FieldLevel) bool {
		return models.CandidateStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("document_status", func(fl validator.FieldLevel) bool {
		return models.DocumentStatus(fl.Field().String()).IsValid()
	})
	return v
}
