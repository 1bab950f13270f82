package routes

import (
	"nortetech-site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSiteRoutes registers the public institutional pages.
func RegisterSiteRoutes(rg *gin.RouterGroup, siteHandler handlers.SiteHandlerInterface) {
	rg.GET("/", siteHandler.Home)
	rg.GET("/servicos/", siteHandler.ListServices)
	rg.GET("/servico/:slug/", siteHandler.GetService)
	rg.GET("/api/v1/servicos/", siteHandler.ListServices)
	rg.GET("/a-empresa/", siteHandler.About)
	rg.GET("/noticias/", siteHandler.ListNews)
	rg.GET("/noticias/:slug/", siteHandler.GetNews)
	rg.GET("/contato/", siteHandler.ContactPage)
	rg.POST("/contato/", siteHandler.SubmitContactMessage)
}
