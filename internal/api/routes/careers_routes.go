package routes

import (
	"nortetech-site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCareersRoutes registers the job list, the application flow and the
// onboarding pages. applyLimit runs after authentication so it counts per user.
func RegisterCareersRoutes(
	rg *gin.RouterGroup,
	careersHandler handlers.CareersHandlerInterface,
	onboardingHandler handlers.OnboardingHandlerInterface,
	authMiddleware gin.HandlerFunc,
	applyLimit gin.HandlerFunc,
) {
	careers := rg.Group("/carreiras")
	{
		careers.GET("/", careersHandler.ListOpenJobs)
		careers.POST("/aplicar/:job_id/", authMiddleware, applyLimit, careersHandler.Apply)
		careers.GET("/minhas-candidaturas/", authMiddleware, careersHandler.ListMyApplications)
	}

	onboarding := rg.Group("/onboarding")
	onboarding.Use(authMiddleware)
	{
		onboarding.GET("/:candidate_id/", onboardingHandler.ListDocuments)
		onboarding.POST("/:candidate_id/", onboardingHandler.SubmitDocument)
	}
}
