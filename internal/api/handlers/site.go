package handlers

import (
	"net/http"
	"strconv"

	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SiteHandler serves the institutional pages and their HR maintenance routes.
type SiteHandler struct {
	service   services.ContentService
	validator *validator.Validate
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(service services.ContentService, validate *validator.Validate) *SiteHandler {
	return &SiteHandler{service: service, validator: validate}
}

// Home godoc
// @Summary      Home page
// @Description  Settings, active carousel, 4 latest news, active video, 6 active services and certifications.
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.HomeResponse
// @Router       / [get]
func (h *SiteHandler) Home(c *gin.Context) {
	home, err := h.service.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, "loading home page", "")
		return
	}
	c.JSON(http.StatusOK, home)
}

// ListServices godoc
// @Summary      Services
// @Tags         site
// @Produce      json
// @Success      200  {array}   models.Service
// @Router       /servicos/ [get]
func (h *SiteHandler) ListServices(c *gin.Context) {
	list, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing services", "/")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetService godoc
// @Summary      Service detail
// @Tags         site
// @Produce      json
// @Param        slug path string true "Service slug"
// @Success      200  {object}  models.Service
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /servico/{slug}/ [get]
func (h *SiteHandler) GetService(c *gin.Context) {
	service, err := h.service.GetService(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "fetching service", "/servicos/")
		return
	}
	c.JSON(http.StatusOK, service)
}

// About godoc
// @Summary      About the company
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.AboutResponse
// @Router       /a-empresa/ [get]
func (h *SiteHandler) About(c *gin.Context) {
	about, err := h.service.About(c.Request.Context())
	if err != nil {
		respondError(c, err, "loading about page", "/")
		return
	}
	c.JSON(http.StatusOK, about)
}

// ListNews godoc
// @Summary      News
// @Description  Newest first.
// @Tags         site
// @Produce      json
// @Success      200  {array}   models.News
// @Router       /noticias/ [get]
func (h *SiteHandler) ListNews(c *gin.Context) {
	news, err := h.service.ListNews(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing news", "/")
		return
	}
	c.JSON(http.StatusOK, news)
}

// GetNews godoc
// @Summary      News post
// @Tags         site
// @Produce      json
// @Param        slug path string true "News slug"
// @Success      200  {object}  models.News
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /noticias/{slug}/ [get]
func (h *SiteHandler) GetNews(c *gin.Context) {
	news, err := h.service.GetNews(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "fetching news", "/noticias/")
		return
	}
	c.JSON(http.StatusOK, news)
}

// ContactPage godoc
// @Summary      Contact page
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.ContactPageResponse
// @Router       /contato/ [get]
func (h *SiteHandler) ContactPage(c *gin.Context) {
	page, err := h.service.ContactPage(c.Request.Context())
	if err != nil {
		respondError(c, err, "loading contact page", "/")
		return
	}
	c.JSON(http.StatusOK, page)
}

// SubmitContactMessage godoc
// @Summary      Send a contact message
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        message body      dto.ContactMessageRequest true "Message"
// @Success      201  {object}  dto.NoticeResponse
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /contato/ [post]
func (h *SiteHandler) SubmitContactMessage(c *gin.Context) {
	var req dto.ContactMessageRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	if _, err := h.service.SubmitContactMessage(c.Request.Context(), &req); err != nil {
		respondError(c, err, "saving contact message", "/contato/")
		return
	}
	respondNotice(c, http.StatusCreated, dto.NoticeSuccess, "Mensagem enviada! Em breve entraremos em contato.", "/contato/", nil)
}

// UpdateSettings godoc
// @Summary      Update company settings
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        settings body      dto.UpdateSettingsRequest true "Settings"
// @Success      200  {object}  models.CompanySettings
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /admin/settings [put]
// @Security     BearerAuth
func (h *SiteHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	settings, err := h.service.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "saving settings", "/admin/")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// CreateVideo godoc
// @Summary      Register a home video
// @Description  When created active, every other video is switched off.
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        video body      dto.CreateVideoRequest true "Video"
// @Success      201  {object}  models.HomeVideo
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /admin/videos [post]
// @Security     BearerAuth
func (h *SiteHandler) CreateVideo(c *gin.Context) {
	var req dto.CreateVideoRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	video, err := h.service.CreateVideo(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "creating video", "/admin/")
		return
	}
	c.JSON(http.StatusCreated, video)
}

// ActivateVideo godoc
// @Summary      Make a video the home video
// @Tags         hr
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200  {object}  models.HomeVideo
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /admin/videos/{id}/activate [patch]
// @Security     BearerAuth
func (h *SiteHandler) ActivateVideo(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	video, err := h.service.ActivateVideo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "activating video", "/admin/")
		return
	}
	c.JSON(http.StatusOK, video)
}

// ListContactMessages godoc
// @Summary      Contact messages
// @Tags         hr
// @Produce      json
// @Param        unread query bool false "Only unread messages"
// @Success      200  {array}   models.ContactMessage
// @Router       /admin/contact-messages [get]
// @Security     BearerAuth
func (h *SiteHandler) ListContactMessages(c *gin.Context) {
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	msgs, err := h.service.ListContactMessages(c.Request.Context(), unreadOnly)
	if err != nil {
		respondError(c, err, "listing contact messages", "/admin/")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkContactMessageRead godoc
// @Summary      Mark a contact message as read
// @Tags         hr
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      204
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /admin/contact-messages/{id}/read [patch]
// @Security     BearerAuth
func (h *SiteHandler) MarkContactMessageRead(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.MarkContactMessageRead(c.Request.Context(), id); err != nil {
		respondError(c, err, "marking contact message read", "/admin/contact-messages")
		return
	}
	c.Status(http.StatusNoContent)
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}
