package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/core/commands"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/dto"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService *services.CategoryService
	factory         *domain.Factory
	runner          *historyRunner
	deps            Dependencies
}

func newCategoryHandler(deps Dependencies, runner *historyRunner) *categoryHandler {
	return &categoryHandler{
		categoryService: deps.CategoryService,
		factory:         deps.Factory,
		runner:          runner,
		deps:            deps,
	}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, deps Dependencies, runner *historyRunner) {
	h := newCategoryHandler(deps, runner)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PATCH("/:id", h.updateCategory)
		categories.DELETE("/:id", h.removeCategory)
	}
}

// createCategory creates a category through the command history so the
// creation can be undone.
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cmd := commands.NewCreateCategoryCommand(h.factory, h.deps.Categories, req.Type, req.Name, req.Description)
	if err := h.runner.Execute(c.Request.Context(), cmd); err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}

	created := cmd.CreatedCategory()
	logger.Info("Category created", slog.String("category_id", created.ID()))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(created))
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		categories []domain.Category
		err        error
	)
	switch c.Query("type") {
	case "":
		categories, err = h.categoryService.ListCategories(c.Request.Context())
	case string(domain.CategoryIncome):
		categories, err = h.categoryService.ListCategoriesByType(c.Request.Context(), domain.CategoryIncome)
	case string(domain.CategoryExpense):
		categories, err = h.categoryService.ListCategoriesByType(c.Request.Context(), domain.CategoryExpense)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type filter"})
		return
	}
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: dto.ToListCategoryResponse(categories)})
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Name == nil && req.Description == nil && req.Color == nil && req.Icon == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name, req.Description, req.Color, req.Icon)
	if err != nil {
		respondError(c, logger, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) removeCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.categoryService.RemoveCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to remove category")
		return
	}

	logger.Info("Category removed", slog.String("category_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
