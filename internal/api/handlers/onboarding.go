package handlers

import (
	"net/http"

	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OnboardingHandler serves the candidate's document upload page.
type OnboardingHandler struct {
	service services.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(service services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// ListDocuments godoc
// @Summary      Onboarding page
// @Description  Documents HR requested from the candidate, with status and rejection reason.
// @Description  Only the owner of the application can see it.
// @Tags         onboarding
// @Produce      json
// @Param        candidate_id path string true "Candidate ID" Format(uuid)
// @Success      200  {object}  dto.OnboardingResponse
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Router       /onboarding/{candidate_id}/ [get]
// @Security     BearerAuth
func (h *OnboardingHandler) ListDocuments(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	candidateID, ok := uuidParam(c, "candidate_id")
	if !ok {
		return
	}

	candidate, docs, err := h.service.ListRequestedDocuments(c.Request.Context(), candidateID, userID)
	if err != nil {
		respondError(c, err, "listing onboarding documents", "/")
		return
	}

	c.JSON(http.StatusOK, dto.OnboardingResponse{
		CandidateID: candidate.ID,
		Name:        candidate.Name,
		JobDisplay:  candidate.JobDisplay(),
		Documents:   dto.NewDocumentResponses(docs),
	})
}

// SubmitDocument godoc
// @Summary      Upload a requested document
// @Description  Multipart form with "doc_id" and "file". The document becomes SUBMITTED whatever its previous status.
// @Tags         onboarding
// @Accept       multipart/form-data
// @Produce      json
// @Param        candidate_id path     string true "Candidate ID" Format(uuid)
// @Param        doc_id       formData string true "Requested document ID" Format(uuid)
// @Param        file         formData file   true "Document (PDF, JPEG or PNG)"
// @Success      200  {object}  dto.NoticeResponse{data=dto.DocumentResponse}
// @Failure      400  {object}  dto.NoticeResponse "Missing file or document id"
// @Failure      404  {object}  dto.NoticeResponse "Not found"
// @Failure      413  {object}  dto.NoticeResponse "File too large"
// @Failure      415  {object}  dto.NoticeResponse "File type not allowed"
// @Router       /onboarding/{candidate_id}/ [post]
// @Security     BearerAuth
func (h *OnboardingHandler) SubmitDocument(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	candidateID, ok := uuidParam(c, "candidate_id")
	if !ok {
		return
	}
	back := "/onboarding/" + candidateID.String() + "/"

	docID, err := uuid.Parse(c.PostForm("doc_id"))
	if err != nil {
		respondNotice(c, http.StatusBadRequest, dto.NoticeError, "Erro no envio. Verifique o arquivo.", back, nil)
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondNotice(c, http.StatusBadRequest, dto.NoticeError, "Erro no envio. Verifique o arquivo.", back, nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err, "opening uploaded document", back)
		return
	}
	defer file.Close()

	doc, err := h.service.SubmitDocument(c.Request.Context(), &dto.SubmitDocumentRequest{
		CandidateID: candidateID,
		DocumentID:  docID,
		UserID:      userID,
		Filename:    fileHeader.Filename,
		File:        file,
	})
	if err != nil {
		respondError(c, err, "submitting document", back)
		return
	}

	msg := "Documento " + doc.DocTypeTitle + " enviado com sucesso!"
	respondNotice(c, http.StatusOK, dto.NoticeSuccess, msg, back, dto.NewDocumentResponse(*doc))
}
