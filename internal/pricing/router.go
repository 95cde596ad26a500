package pricing

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	club := rg.Group("/clubs/:clubId")
	club.Use(middleware.JWTAuth())
	{
		club.GET("/pricing-rules", controller.GetClubPricingRules) // GET /api/v1/clubs/:clubId/pricing-rules
		club.GET("/promotions", controller.GetClubPromotions)      // GET /api/v1/clubs/:clubId/promotions
	}
}
