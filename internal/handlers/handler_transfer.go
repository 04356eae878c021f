package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/core/commands"
	"github.com/fintrackhq/fintrack_app/internal/dto"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
)

// transferHandler handles HTTP requests that move funds between accounts.
type transferHandler struct {
	deps   Dependencies
	runner *historyRunner
}

func newTransferHandler(deps Dependencies, runner *historyRunner) *transferHandler {
	return &transferHandler{deps: deps, runner: runner}
}

// registerTransferRoutes registers the transfer route.
func registerTransferRoutes(rg *gin.RouterGroup, deps Dependencies, runner *historyRunner) {
	h := newTransferHandler(deps, runner)
	rg.POST("/transfers", h.transfer)
}

// transfer executes a funds transfer through the command history so it can
// be undone.
func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := req.Amount.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to transfer")
		return
	}

	cmd := commands.NewTransferCommand(
		h.deps.Accounts,
		h.deps.OperationService,
		h.deps.CategoryService,
		h.deps.Factory,
		req.FromAccountID,
		req.ToAccountID,
		amount,
		commands.WithTransferCategoryName(h.deps.Config.TransferCategoryName),
	)
	if err := h.runner.Execute(c.Request.Context(), cmd); err != nil {
		respondError(c, logger, err, "Failed to transfer")
		return
	}

	withdrawal, deposit := cmd.Operations()
	from, err := h.deps.AccountService.GetAccount(c.Request.Context(), req.FromAccountID)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer")
		return
	}
	to, err := h.deps.AccountService.GetAccount(c.Request.Context(), req.ToAccountID)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer")
		return
	}

	logger.Info("Transfer completed",
		slog.String("from_account_id", req.FromAccountID),
		slog.String("to_account_id", req.ToAccountID))
	c.JSON(http.StatusCreated, dto.TransferResponse{
		Withdrawal:  dto.ToOperationResponse(withdrawal),
		Deposit:     dto.ToOperationResponse(deposit),
		FromAccount: dto.ToAccountResponse(from),
		ToAccount:   dto.ToAccountResponse(to),
	})
}
