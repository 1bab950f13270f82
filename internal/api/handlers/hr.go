package handlers

import (
	"fmt"
	"net/http"

	"nortetech-site/internal/blob"
	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HRHandler serves the administrative surface used by HR staff.
type HRHandler struct {
	service   services.HRService
	validator *validator.Validate
}

// NewHRHandler creates a new HRHandler.
func NewHRHandler(service services.HRService, validate *validator.Validate) *HRHandler {
	return &HRHandler{service: service, validator: validate}
}

// ListJobs godoc
// @Summary      List all jobs
// @Description  Open and closed jobs.
// @Tags         hr
// @Produce      json
// @Success      200  {array}   models.Job
// @Failure      403  {object}  map[string]string "Forbidden"
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *HRHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing jobs", "/admin/")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob godoc
// @Summary      Publish a job
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true "Job"
// @Success      201  {object}  models.Job
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /admin/jobs [post]
// @Security     BearerAuth
func (h *HRHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "creating job", "/admin/jobs")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// SetJobActive godoc
// @Summary      Open or close a job
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id   path      string                  true "Job ID" Format(uuid)
// @Param        body body      dto.SetJobActiveRequest true "New state"
// @Success      200  {object}  models.Job
// @Failure      404  {object}  dto.NoticeResponse "Job not found"
// @Router       /admin/jobs/{id}/active [patch]
// @Security     BearerAuth
func (h *HRHandler) SetJobActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.SetJobActiveRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	job, err := h.service.SetJobActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		respondError(c, err, "updating job", "/admin/jobs")
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListDocumentTypes godoc
// @Summary      List document types
// @Tags         hr
// @Produce      json
// @Success      200  {array}   models.DocumentType
// @Router       /admin/document-types [get]
// @Security     BearerAuth
func (h *HRHandler) ListDocumentTypes(c *gin.Context) {
	types, err := h.service.ListDocumentTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing document types", "/admin/")
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateDocumentType godoc
// @Summary      Add a document type
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        type body      dto.CreateDocumentTypeRequest true "Document type"
// @Success      201  {object}  models.DocumentType
// @Failure      409  {object}  dto.NoticeResponse "Title already exists"
// @Router       /admin/document-types [post]
// @Security     BearerAuth
func (h *HRHandler) CreateDocumentType(c *gin.Context) {
	var req dto.CreateDocumentTypeRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	docType, err := h.service.CreateDocumentType(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "creating document type", "/admin/document-types")
		return
	}
	c.JSON(http.StatusCreated, docType)
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  Filter by status, job or talent pool, with the documents status of each candidate.
// @Tags         hr
// @Produce      json
// @Param        status      query string false "Candidate status"
// @Param        job_id      query string false "Job ID" Format(uuid)
// @Param        talent_pool query bool   false "Only candidates without a job"
// @Param        q           query string false "Name, e-mail or HR notes search"
// @Param        sent_from   query string false "Sent on or after (YYYY-MM-DD)"
// @Param        sent_to     query string false "Sent on or before (YYYY-MM-DD)"
// @Param        limit       query int    false "Page size (default 50)"
// @Param        offset      query int    false "Offset"
// @Success      200  {array}   dto.CandidateSummary
// @Failure      400  {object}  map[string]string "Invalid filters"
// @Router       /admin/candidates [get]
// @Security     BearerAuth
func (h *HRHandler) ListCandidates(c *gin.Context) {
	var req dto.ListCandidatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if !validateRequest(c, h.validator, &req) {
		return
	}
	candidates, err := h.service.ListCandidates(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "listing candidates", "/admin/")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// GetCandidate godoc
// @Summary      Candidate detail
// @Description  Application snapshot, requested documents, documents status and onboarding link.
// @Tags         hr
// @Produce      json
// @Param        id path string true "Candidate ID" Format(uuid)
// @Success      200  {object}  dto.CandidateDetail
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /admin/candidates/{id} [get]
// @Security     BearerAuth
func (h *HRHandler) GetCandidate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.service.GetCandidate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetching candidate", "/admin/candidates")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateCandidate godoc
// @Summary      Review a candidate
// @Description  Changes the status and/or the HR notes.
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id   path      string                     true "Candidate ID" Format(uuid)
// @Param        body body      dto.UpdateCandidateRequest true "Changes"
// @Success      200  {object}  models.Candidate
// @Failure      400  {object}  dto.NoticeResponse "Invalid input"
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /admin/candidates/{id} [patch]
// @Security     BearerAuth
func (h *HRHandler) UpdateCandidate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCandidateRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id

	candidate, err := h.service.UpdateCandidate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "updating candidate", "/admin/candidates/"+id.String())
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// RequestDocument godoc
// @Summary      Request a document
// @Description  Asks the candidate for a document type. Each type is requested once per candidate.
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id   path      string                     true "Candidate ID" Format(uuid)
// @Param        body body      dto.RequestDocumentRequest true "Document type"
// @Success      201  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.NoticeResponse "Unknown candidate or type"
// @Failure      409  {object}  dto.NoticeResponse "Already requested"
// @Router       /admin/candidates/{id}/documents [post]
// @Security     BearerAuth
func (h *HRHandler) RequestDocument(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.RequestDocumentRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.CandidateID = id

	doc, err := h.service.RequestDocument(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "requesting document", "/admin/candidates/"+id.String())
		return
	}
	c.JSON(http.StatusCreated, dto.NewDocumentResponse(*doc))
}

// ReviewDocument godoc
// @Summary      Review a document
// @Description  Sets the document status. REJECTED requires a rejection reason.
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id     path      string                    true "Candidate ID" Format(uuid)
// @Param        doc_id path      string                    true "Requested document ID" Format(uuid)
// @Param        body   body      dto.ReviewDocumentRequest true "Decision"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.NoticeResponse "Invalid input"
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /admin/candidates/{id}/documents/{doc_id} [patch]
// @Security     BearerAuth
func (h *HRHandler) ReviewDocument(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	docID, ok := uuidParam(c, "doc_id")
	if !ok {
		return
	}
	var req dto.ReviewDocumentRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = docID
	req.CandidateID = id

	doc, err := h.service.ReviewDocument(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "reviewing document", "/admin/candidates/"+id.String())
		return
	}
	c.JSON(http.StatusOK, dto.NewDocumentResponse(*doc))
}

// CandidateDossier godoc
// @Summary      Candidate dossier
// @Description  Printable PDF with the application snapshot, the documents and a QR code to the onboarding page.
// @Tags         hr
// @Produce      application/pdf
// @Param        id path string true "Candidate ID" Format(uuid)
// @Success      200  {file}    file
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /admin/candidates/{id}/dossier.pdf [get]
// @Security     BearerAuth
func (h *HRHandler) CandidateDossier(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	pdf, err := h.service.CandidateDossier(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "rendering dossier", "/admin/candidates/"+id.String())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="dossie-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// DownloadResume godoc
// @Summary      Download the application résumé
// @Tags         hr
// @Produce      application/pdf
// @Param        id path string true "Candidate ID" Format(uuid)
// @Success      200  {file}    file
// @Failure      404  {object}  dto.NoticeResponse "No résumé"
// @Router       /admin/candidates/{id}/resume [get]
// @Security     BearerAuth
func (h *HRHandler) DownloadResume(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	f, err := h.service.OpenResume(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "opening resume", "/admin/candidates/"+id.String())
		return
	}
	serveFile(c, f, "attachment")
}

// DownloadDocument godoc
// @Summary      View an uploaded document
// @Description  Streams the last upload of a requested document of this candidate.
// @Tags         hr
// @Produce      application/octet-stream
// @Param        id     path string true "Candidate ID" Format(uuid)
// @Param        doc_id path string true "Requested document ID" Format(uuid)
// @Success      200  {file}    file
// @Failure      404  {object}  dto.NoticeResponse "Not found or not uploaded"
// @Router       /admin/candidates/{id}/documents/{doc_id}/file [get]
// @Security     BearerAuth
func (h *HRHandler) DownloadDocument(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	docID, ok := uuidParam(c, "doc_id")
	if !ok {
		return
	}
	f, err := h.service.OpenDocumentFile(c.Request.Context(), id, docID)
	if err != nil {
		respondError(c, err, "opening document", "/admin/candidates/"+id.String())
		return
	}
	serveFile(c, f, "inline")
}

func serveFile(c *gin.Context, f *blob.File, disposition string) {
	defer f.Close()
	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, f, map[string]string{
		"Content-Disposition": fmt.Sprintf(`%s; filename="%s"`, disposition, f.Filename),
	})
}
