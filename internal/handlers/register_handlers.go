package handlers

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/core/commands"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/platform/config"
)

// Dependencies bundles everything the HTTP layer needs.
type Dependencies struct {
	Config *config.Config

	Factory    *domain.Factory
	Accounts   portsrepo.AccountRepository
	Categories portsrepo.CategoryRepository

	AccountService        *services.AccountService
	CategoryService       *services.CategoryService
	OperationService      *services.OperationService
	ReconciliationService *services.ReconciliationService
	AnalyticsService      *services.AnalyticsService

	History *commands.History
}

// historyRunner serializes all command execution and undo/redo against the
// shared history. The history itself is not safe for concurrent use.
type historyRunner struct {
	mu      sync.Mutex
	history *commands.History
}

func newHistoryRunner(history *commands.History) *historyRunner {
	return &historyRunner{history: history}
}

func (r *historyRunner) Execute(ctx context.Context, cmd commands.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Execute(ctx, cmd)
}

func (r *historyRunner) Undo(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Undo(ctx)
}

func (r *historyRunner) Redo(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Redo(ctx)
}

func (r *historyRunner) Snapshot() (names []string, canUndo, canRedo bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Names(), r.history.CanUndo(), r.history.CanRedo()
}

// RegisterRoutes sets up all application routes, injecting dependencies.
func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	runner := newHistoryRunner(deps.History)

	v1 := r.Group("/api/v1")
	registerAccountRoutes(v1, deps, runner)
	registerCategoryRoutes(v1, deps, runner)
	registerOperationRoutes(v1, deps, runner)
	registerTransferRoutes(v1, deps, runner)
	registerHistoryRoutes(v1, runner)
	registerReconciliationRoutes(v1, deps.ReconciliationService)
	registerAnalyticsRoutes(v1, deps.AnalyticsService, deps.Factory)
}
