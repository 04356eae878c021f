package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/dto"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
)

// analyticsHandler handles aggregate reporting requests.
type analyticsHandler struct {
	analyticsService *services.AnalyticsService
	factory          *domain.Factory
}

// registerAnalyticsRoutes registers routes related to analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, as *services.AnalyticsService, factory *domain.Factory) {
	h := &analyticsHandler{analyticsService: as, factory: factory}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.summary)
		analytics.GET("/top-categories", h.topCategories)
	}
}

func (h *analyticsHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AnalyticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	period, err := h.resolvePeriod(params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute analytics")
		return
	}

	summary, err := h.analyticsService.CalculatePeriodAnalytics(c.Request.Context(), period, h.factory.DefaultCurrency())
	if err != nil {
		respondError(c, logger, err, "Failed to compute analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodAnalyticsResponse(summary))
}

func (h *analyticsHandler) topCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AnalyticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	period, err := h.resolvePeriod(params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute analytics")
		return
	}

	operationType := domain.OperationExpense
	if params.Type == string(domain.OperationIncome) {
		operationType = domain.OperationIncome
	}

	top, err := h.analyticsService.TopCategories(c.Request.Context(), period, operationType, params.Limit, h.factory.DefaultCurrency())
	if err != nil {
		respondError(c, logger, err, "Failed to compute analytics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": dto.ToListCategoryAnalyticsResponse(top)})
}

func (h *analyticsHandler) resolvePeriod(params dto.AnalyticsParams) (domain.DateRange, error) {
	now := h.factory.Clock().Now()
	switch params.Period {
	case "today":
		return domain.Today(now), nil
	case "year":
		return domain.ThisYear(now), nil
	case "custom":
		return parseDateRange(params.From, params.To)
	default:
		return domain.ThisMonth(now), nil
	}
}
