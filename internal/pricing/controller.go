package pricing

import (
	"net/http"

	"courtly/internal/shared/constants"
	"courtly/internal/shared/utils/response"
	"courtly/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	repo     Repository
	cacheSvc cache.Service // nil when redis is unavailable
}

func NewController(repo Repository, cacheSvc cache.Service) *Controller {
	return &Controller{repo: repo, cacheSvc: cacheSvc}
}

// GetClubPricingRules handles GET /clubs/:clubId/pricing-rules
func (c *Controller) GetClubPricingRules(ctx *gin.Context) {
	clubID, err := uuid.Parse(ctx.Param("clubId"))
	if err != nil {
		response.BadRequest(ctx, "Invalid club ID", err.Error())
		return
	}

	key := constants.BuildPricingRulesKey(clubID.String())
	if c.cacheSvc != nil {
		var cached []Rule
		if err := c.cacheSvc.Get(ctx.Request.Context(), key, &cached); err == nil {
			response.Success(ctx, "Pricing rules retrieved successfully", cached)
			return
		}
	}

	rules, err := c.repo.GetRulesByClub(ctx.Request.Context(), clubID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get pricing rules", nil, err.Error())
		return
	}

	if c.cacheSvc != nil {
		_ = c.cacheSvc.Set(ctx.Request.Context(), key, rules, constants.TTL_PRICING_RULES)
	}

	response.Success(ctx, "Pricing rules retrieved successfully", rules)
}

// GetClubPromotions handles GET /clubs/:clubId/promotions
func (c *Controller) GetClubPromotions(ctx *gin.Context) {
	clubID, err := uuid.Parse(ctx.Param("clubId"))
	if err != nil {
		response.BadRequest(ctx, "Invalid club ID", err.Error())
		return
	}

	key := constants.BuildPromotionsKey(clubID.String())
	if c.cacheSvc != nil {
		var cached []Promotion
		if err := c.cacheSvc.Get(ctx.Request.Context(), key, &cached); err == nil {
			response.Success(ctx, "Promotions retrieved successfully", cached)
			return
		}
	}

	promos, err := c.repo.GetActivePromotionsByClub(ctx.Request.Context(), clubID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get promotions", nil, err.Error())
		return
	}

	if c.cacheSvc != nil {
		// Promotions toggle more often than the catalog, so they get the
		// short TTL
		_ = c.cacheSvc.Set(ctx.Request.Context(), key, promos, constants.TTL_PROMOTIONS)
	}

	response.Success(ctx, "Promotions retrieved successfully", promos)
}
