package reservations

import (
	"net/http"
	"time"

	"courtly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	repo Repository
}

func NewController(repo Repository) *Controller {
	return &Controller{repo: repo}
}

// GetClubReservations handles GET /clubs/:clubId/reservations?date=YYYY-MM-DD —
// the direct, uncached read used when the aggregated endpoint is gated off.
func (c *Controller) GetClubReservations(ctx *gin.Context) {
	clubID, err := uuid.Parse(ctx.Param("clubId"))
	if err != nil {
		response.BadRequest(ctx, "Invalid club ID", err.Error())
		return
	}

	date := ctx.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.BadRequest(ctx, "date query parameter must be YYYY-MM-DD", err.Error())
		return
	}

	list, err := c.repo.GetActiveByClubAndDate(ctx.Request.Context(), clubID, date)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get reservations", nil, err.Error())
		return
	}

	response.Success(ctx, "Reservations retrieved successfully", list)
}
