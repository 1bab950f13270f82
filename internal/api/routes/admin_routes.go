package routes

import (
	"nortetech-site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the HR surface under /admin. Every route needs an
// authenticated HR user. extra middleware (request validation) runs after the guards.
func RegisterAdminRoutes(
	rg *gin.RouterGroup,
	hrHandler handlers.HRHandlerInterface,
	siteHandler handlers.SiteHandlerInterface,
	authMiddleware gin.HandlerFunc,
	requireHR gin.HandlerFunc,
	extra ...gin.HandlerFunc,
) {
	admin := rg.Group("/admin")
	admin.Use(authMiddleware, requireHR)
	admin.Use(extra...)
	{
		admin.GET("/jobs", hrHandler.ListJobs)
		admin.POST("/jobs", hrHandler.CreateJob)
		admin.PATCH("/jobs/:id/active", hrHandler.SetJobActive)

		admin.GET("/document-types", hrHandler.ListDocumentTypes)
		admin.POST("/document-types", hrHandler.CreateDocumentType)

		admin.GET("/candidates", hrHandler.ListCandidates)
		admin.GET("/candidates/:id", hrHandler.GetCandidate)
		admin.PATCH("/candidates/:id", hrHandler.UpdateCandidate)
		admin.POST("/candidates/:id/documents", hrHandler.RequestDocument)
		admin.PATCH("/candidates/:id/documents/:doc_id", hrHandler.ReviewDocument)
		admin.GET("/candidates/:id/documents/:doc_id/file", hrHandler.DownloadDocument)
		admin.GET("/candidates/:id/resume", hrHandler.DownloadResume)
		admin.GET("/candidates/:id/dossier.pdf", hrHandler.CandidateDossier)

		admin.PUT("/settings", siteHandler.UpdateSettings)
		admin.POST("/videos", siteHandler.CreateVideo)
		admin.PATCH("/videos/:id/activate", siteHandler.ActivateVideo)
		admin.GET("/contact-messages", siteHandler.ListContactMessages)
		admin.PATCH("/contact-messages/:id/read", siteHandler.MarkContactMessageRead)
	}
}
