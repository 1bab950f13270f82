package dto

import "nortetech-site/internal/models"

// ContactMessageRequest defines the contact form.
type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateSettingsRequest replaces the company settings.
type UpdateSettingsRequest struct {
	SiteTitle    string            `json:"site_title" validate:"required,max=100"`
	Mission      string            `json:"mission"`
	Vision       string            `json:"vision"`
	Values       string            `json:"values"`
	Phone        string            `json:"phone" validate:"omitempty,max=20"`
	EmailContact string            `json:"email_contact" validate:"omitempty,email"`
	Address      string            `json:"address"`
	SocialLinks  map[string]string `json:"social_links" validate:"omitempty,dive,keys,oneof=instagram linkedin youtube facebook,endkeys,omitempty,url"`
}

// CreateVideoRequest registers a home video.
type CreateVideoRequest struct {
	Title     string `json:"title" validate:"required,max=100"`
	VideoFile string `json:"video_file" validate:"required,max=255"`
	IsActive  bool   `json:"is_active"`
}

// HomeResponse aggregates the home page.
type HomeResponse struct {
	Settings       models.CompanySettings `json:"settings"`
	Carousel       []models.CarouselImage `json:"carousel"`
	LatestNews     []models.News          `json:"latest_news"`
	Video          *models.HomeVideo      `json:"video"`
	Services       []models.Service       `json:"services"`
	Certifications []models.Certification `json:"certifications"`
}

// AboutResponse aggregates the "a empresa" page.
type AboutResponse struct {
	Settings       models.CompanySettings `json:"settings"`
	Bases          []models.OperatingBase `json:"bases"`
	Certifications []models.Certification `json:"certifications"`
}

// ContactPageResponse is the contact page.
type ContactPageResponse struct {
	Settings models.CompanySettings  `json:"settings"`
	Channels []models.ContactChannel `json:"channels"`
}
