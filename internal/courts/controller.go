package courts

import (
	"errors"
	"net/http"

	"courtly/internal/shared/constants"
	"courtly/internal/shared/utils/response"
	"courtly/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Controller struct {
	repo     Repository
	cacheSvc cache.Service // nil when redis is unavailable
}

func NewController(repo Repository, cacheSvc cache.Service) *Controller {
	return &Controller{repo: repo, cacheSvc: cacheSvc}
}

// GetClubCourts handles GET /clubs/:clubId/courts — the direct, uncached read
// that callers fall back to when the aggregated availability endpoint is gated off.
func (c *Controller) GetClubCourts(ctx *gin.Context) {
	clubID, err := uuid.Parse(ctx.Param("clubId"))
	if err != nil {
		response.BadRequest(ctx, "Invalid club ID", err.Error())
		return
	}

	key := constants.BuildClubCourtsKey(clubID.String())
	if c.cacheSvc != nil {
		var cached []Court
		if err := c.cacheSvc.Get(ctx.Request.Context(), key, &cached); err == nil {
			response.Success(ctx, "Courts retrieved successfully", cached)
			return
		}
	}

	courts, err := c.repo.GetActiveCourtsByClub(ctx.Request.Context(), clubID, nil)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get courts", nil, err.Error())
		return
	}

	if c.cacheSvc != nil {
		// Catalog data changes rarely; a failed write just skips the cache
		_ = c.cacheSvc.Set(ctx.Request.Context(), key, courts, constants.TTL_CLUB_COURTS)
	}

	response.Success(ctx, "Courts retrieved successfully", courts)
}

// GetCourt handles GET /courts/:id
func (c *Controller) GetCourt(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid court ID", err.Error())
		return
	}

	key := constants.BuildCourtDetailKey(id.String())
	if c.cacheSvc != nil {
		var cached Court
		if err := c.cacheSvc.Get(ctx.Request.Context(), key, &cached); err == nil {
			response.Success(ctx, "Court retrieved successfully", cached)
			return
		}
	}

	court, err := c.repo.GetCourtByID(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, gorm.ErrRecordNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get court", nil, err.Error())
		return
	}

	if c.cacheSvc != nil {
		_ = c.cacheSvc.Set(ctx.Request.Context(), key, court, constants.TTL_CLUB_COURTS)
	}

	response.Success(ctx, "Court retrieved successfully", court)
}
