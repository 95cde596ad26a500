package availability

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAvailabilityRoutes(rg *gin.RouterGroup, controller *Controller) {
	availability := rg.Group("/clubs/:clubId/availability")
	availability.Use(middleware.JWTAuth())
	{
		availability.GET("", controller.GetClubAvailability) // GET /api/v1/clubs/:clubId/availability
	}
}
