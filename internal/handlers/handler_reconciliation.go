package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/dto"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
)

// reconciliationHandler handles balance verification requests.
type reconciliationHandler struct {
	reconciliationService *services.ReconciliationService
}

// registerReconciliationRoutes registers routes related to balance checks.
func registerReconciliationRoutes(rg *gin.RouterGroup, rs *services.ReconciliationService) {
	h := &reconciliationHandler{reconciliationService: rs}

	reconciliation := rg.Group("/reconciliation")
	{
		reconciliation.GET("", h.checkAll)
		reconciliation.GET("/:accountID", h.checkAccount)
		reconciliation.POST("/:accountID/recalculate", h.recalculate)
	}
}

func (h *reconciliationHandler) checkAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.reconciliationService.CheckAllBalances(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to check balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(balances))
}

func (h *reconciliationHandler) checkAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.reconciliationService.CheckAccountBalance(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondError(c, logger, err, "Failed to check balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceCheckResponse(balance))
}

// recalculate overwrites the stored balance with the balance recomputed
// from operations. Pass dryRun=true to preview without writing.
func (h *reconciliationHandler) recalculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	autoFix := c.Query("dryRun") != "true"

	balance, err := h.reconciliationService.RecalculateBalance(c.Request.Context(), c.Param("accountID"), autoFix)
	if err != nil {
		respondError(c, logger, err, "Failed to recalculate balance")
		return
	}

	if autoFix {
		logger.Info("Balance recalculated", slog.String("account_id", c.Param("accountID")))
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceCheckResponse(balance))
}
