package reservations

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(rg *gin.RouterGroup, controller *Controller) {
	res := rg.Group("/clubs/:clubId/reservations")
	res.Use(middleware.JWTAuth(), middleware.RequireClubStaff())
	{
		res.GET("", controller.GetClubReservations) // GET /api/v1/clubs/:clubId/reservations
	}
}
