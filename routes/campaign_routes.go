package routes

import (
	"github.com/Anand-727/ShopSphere/controllers"
	"github.com/Anand-727/ShopSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initCampaignRoutes initializes all campaign-related routes
func initCampaignRoutes(router *gin.RouterGroup) {
	campaigns := router.Group("/campaigns")
	{
		// Public storefront route
		campaigns.GET("/active", controllers.GetActiveCampaign)

		// Admin campaign management
		admin := campaigns.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.POST("", controllers.CreateCampaign)
			admin.GET("", controllers.ListCampaigns)
			admin.GET("/:id", controllers.GetCampaign)
			admin.PUT("/:id", controllers.UpdateCampaign)
			admin.DELETE("/:id", controllers.DeleteCampaign)

			admin.GET("/report/excel", controllers.DownloadCampaignReportExcel)
			admin.GET("/report/pdf", controllers.DownloadCampaignReportPDF)
		}
	}
}
