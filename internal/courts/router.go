package courts

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCourtRoutes(rg *gin.RouterGroup, controller *Controller) {
	clubCourts := rg.Group("/clubs/:clubId/courts")
	clubCourts.Use(middleware.JWTAuth())
	{
		clubCourts.GET("", controller.GetClubCourts) // GET /api/v1/clubs/:clubId/courts
	}

	courts := rg.Group("/courts")
	courts.Use(middleware.JWTAuth())
	{
		courts.GET("/:id", controller.GetCourt) // GET /api/v1/courts/:id
	}
}
