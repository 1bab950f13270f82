package routes

import (
	"nortetech-site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers sign-up, login and the candidate's profile area.
// loginLimit guards the credential endpoints.
func RegisterAccountRoutes(
	rg *gin.RouterGroup,
	userHandler handlers.UserHandlerInterface,
	profileHandler handlers.ProfileHandlerInterface,
	authMiddleware gin.HandlerFunc,
	loginLimit gin.HandlerFunc,
) {
	rg.POST("/cadastro/", loginLimit, userHandler.Register)
	rg.POST("/login/", loginLimit, userHandler.Login)
	rg.POST("/login/refresh/", userHandler.Refresh)
	rg.POST("/logout/", userHandler.Logout)

	profile := rg.Group("/meu-perfil")
	profile.Use(authMiddleware)
	{
		profile.GET("/", profileHandler.GetProfile)
		profile.PUT("/", profileHandler.UpdateProfile)
		profile.POST("/curriculo/", profileHandler.UploadResume)

		profile.POST("/formacao/adicionar/", profileHandler.AddEducation)
		profile.DELETE("/formacao/deletar/:id/", profileHandler.DeleteEducation)

		profile.POST("/experiencia/adicionar/", profileHandler.AddExperience)
		profile.DELETE("/experiencia/deletar/:id/", profileHandler.DeleteExperience)

		profile.POST("/curso/adicionar/", profileHandler.AddCourse)
		profile.DELETE("/curso/deletar/:id/", profileHandler.DeleteCourse)
	}
}
