package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/commands"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/dto"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
)

// operationHandler handles HTTP requests related to operations.
type operationHandler struct {
	operationService *services.OperationService
	factory          *domain.Factory
	runner           *historyRunner
	deps             Dependencies
}

func newOperationHandler(deps Dependencies, runner *historyRunner) *operationHandler {
	return &operationHandler{
		operationService: deps.OperationService,
		factory:          deps.Factory,
		runner:           runner,
		deps:             deps,
	}
}

// registerOperationRoutes registers routes related to operations.
func registerOperationRoutes(rg *gin.RouterGroup, deps Dependencies, runner *historyRunner) {
	h := newOperationHandler(deps, runner)

	operations := rg.Group("/operations")
	{
		operations.POST("", h.addOperation)
		operations.GET("", h.listOperations)
		operations.POST("/recurring/process", h.processRecurring)
	}
}

// addOperation posts an operation through the command history so the
// posting can be undone.
func (h *operationHandler) addOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddOperation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := req.Amount.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to add operation")
		return
	}

	var opts []commands.AddOperationOption
	if req.IsRecurring {
		opts = append(opts, commands.WithRecurrence(req.RecurringPattern))
	}
	cmd := commands.NewAddOperationCommand(h.factory, h.deps.Accounts, h.operationService, req.Type, req.AccountID, amount, req.CategoryID, req.Description, req.Date, opts...)
	if err := h.runner.Execute(c.Request.Context(), cmd); err != nil {
		respondError(c, logger, err, "Failed to add operation")
		return
	}

	recorded := cmd.RecordedOperation()
	logger.Info("Operation added",
		slog.String("operation_id", recorded.ID()),
		slog.String("account_id", recorded.AccountID()))
	c.JSON(http.StatusCreated, dto.ToOperationResponse(recorded))
}

func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListOperationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var (
		operations []domain.Operation
		err        error
	)
	switch {
	case params.AccountID != "":
		operations, err = h.operationService.FindByAccount(c.Request.Context(), params.AccountID)
	case params.From != "" || params.To != "":
		var period domain.DateRange
		period, err = parseDateRange(params.From, params.To)
		if err != nil {
			respondError(c, logger, err, "Failed to list operations")
			return
		}
		operations, err = h.operationService.FindByDateRange(c.Request.Context(), period)
	default:
		operations, err = h.operationService.FindByDateRange(c.Request.Context(), domain.ThisYear(h.factory.Clock().Now()))
	}
	if err != nil {
		respondError(c, logger, err, "Failed to list operations")
		return
	}

	c.JSON(http.StatusOK, dto.ListOperationsResponse{Operations: dto.ToListOperationResponse(operations)})
}

// processRecurring clones every recurring operation onto today and posts
// the clones.
func (h *operationHandler) processRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	processed, err := h.operationService.ProcessRecurringOperations(c.Request.Context(), h.factory.Clock().Now())
	if err != nil {
		respondError(c, logger, err, "Failed to process recurring operations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

// parseDateRange builds a range from optional RFC 3339 date strings. A
// missing bound defaults to the distant past or future respectively.
func parseDateRange(from, to string) (domain.DateRange, error) {
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

	var err error
	if from != "" {
		start, err = time.Parse(time.RFC3339, from)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid from date %q: %w", from, apperrors.ErrValidation)
		}
	}
	if to != "" {
		end, err = time.Parse(time.RFC3339, to)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid to date %q: %w", to, apperrors.ErrValidation)
		}
	}
	return domain.NewDateRange(start, end)
}
