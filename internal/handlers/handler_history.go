package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/dto"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
)

// historyHandler exposes the undo/redo state of the command history.
type historyHandler struct {
	runner *historyRunner
}

// registerHistoryRoutes registers routes related to command history.
func registerHistoryRoutes(rg *gin.RouterGroup, runner *historyRunner) {
	h := &historyHandler{runner: runner}

	history := rg.Group("/history")
	{
		history.GET("", h.getHistory)
		history.POST("/undo", h.undo)
		history.POST("/redo", h.redo)
	}
}

func (h *historyHandler) getHistory(c *gin.Context) {
	names, canUndo, canRedo := h.runner.Snapshot()
	c.JSON(http.StatusOK, dto.HistoryResponse{
		Commands: names,
		CanUndo:  canUndo,
		CanRedo:  canRedo,
	})
}

// undo reverts the most recent command. Undoing an empty history succeeds
// without effect.
func (h *historyHandler) undo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.runner.Undo(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to undo")
		return
	}

	h.getHistory(c)
}

// redo re-executes the most recently undone command. Redoing with nothing
// undone succeeds without effect.
func (h *historyHandler) redo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.runner.Redo(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to redo")
		return
	}

	h.getHistory(c)
}
