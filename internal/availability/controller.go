package availability

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"courtly/internal/shared/config"
	"courtly/internal/shared/middleware"
	"courtly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	svc Service
	cfg config.AvailabilityConfig
}

func NewController(svc Service, cfg config.AvailabilityConfig) *Controller {
	return &Controller{svc: svc, cfg: cfg}
}

// GetClubAvailability handles GET /clubs/:clubId/availability, the aggregated
// read of courts, reservations, pricing and blocks for one club and date.
func (c *Controller) GetClubAvailability(ctx *gin.Context) {
	var query availabilityQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.BadRequest(ctx, "Invalid query parameters", err.Error())
		return
	}

	includePricing, err := strconv.ParseBool(query.IncludePricing)
	if err != nil {
		response.BadRequest(ctx, "Invalid query parameters", "include_pricing must be a boolean")
		return
	}
	includeConflicts, err := strconv.ParseBool(query.IncludeConflicts)
	if err != nil {
		response.BadRequest(ctx, "Invalid query parameters", "include_conflicts must be a boolean")
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "user identity not found in context", nil, nil)
		return
	}

	result, err := c.svc.GetAvailability(ctx.Request.Context(), userID, Request{
		ClubID:      ctx.Param("clubId"),
		Date:        query.Date,
		CourtIDs:    splitCourtIDs(query.CourtIDs),
		WindowStart: query.Start,
		WindowEnd:   query.End,
	})
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if !result.Enabled {
		response.Success(ctx, "Aggregated availability is disabled", DisabledResponse{
			Enabled:      false,
			UseDirectAPI: true,
		})
		return
	}

	cacheState := "miss"
	if result.CacheHit {
		cacheState = "hit"
		ctx.Header("X-Cache", "HIT")
	} else {
		ctx.Header("X-Cache", "MISS")
	}
	if result.Snapshot.Fallback {
		ctx.Header("X-Fallback", "true")
	}
	ctx.Header("Cache-Control", fmt.Sprintf("private, max-age=%d", int(c.cfg.SnapshotTTL.Seconds())))

	response.Success(ctx, "Availability retrieved successfully", AvailabilityResponse{
		Enabled:  true,
		Cache:    cacheState,
		Snapshot: ShapeSnapshot(result.Snapshot, includePricing, includeConflicts),
	})
}

func (c *Controller) respondError(ctx *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		response.BadRequest(ctx, "Validation failed", gin.H{validationErr.Field: validationErr.Reason})
		return
	}

	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, authErr.Reason)
		return
	}

	response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get availability", nil, err.Error())
}
