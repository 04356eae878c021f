package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_app/internal/core/commands"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/dto"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService *services.AccountService
	accounts       portsrepo.AccountRepository
	factory        *domain.Factory
	runner         *historyRunner
}

func newAccountHandler(deps Dependencies, runner *historyRunner) *accountHandler {
	return &accountHandler{
		accountService: deps.AccountService,
		accounts:       deps.Accounts,
		factory:        deps.Factory,
		runner:         runner,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, deps Dependencies, runner *historyRunner) {
	h := newAccountHandler(deps, runner)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.removeAccount)
	}
}

// createAccount creates an account through the command history so the
// creation can be undone.
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var initialBalance domain.Money
	if req.InitialBalance != nil {
		var err error
		initialBalance, err = req.InitialBalance.ToDomain()
		if err != nil {
			respondError(c, logger, err, "Failed to create account")
			return
		}
	}

	cmd := commands.NewCreateAccountCommand(h.factory, h.accounts, req.Name, initialBalance, req.AccountNumber)
	if err := h.runner.Execute(c.Request.Context(), cmd); err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	created := cmd.CreatedAccount()
	logger.Info("Account created", slog.String("account_id", created.ID()))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(created))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		accounts []domain.Account
		err      error
	)
	if c.Query("active") == "true" {
		accounts, err = h.accountService.ListActiveAccounts(c.Request.Context())
	} else {
		accounts, err = h.accountService.ListAccounts(c.Request.Context())
	}
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	accountID := c.Param("id")
	var account *domain.Account
	var err error
	if req.Name != nil {
		account, err = h.accountService.RenameAccount(c.Request.Context(), accountID, *req.Name)
		if err != nil {
			respondError(c, logger, err, "Failed to update account")
			return
		}
	}
	if req.IsActive != nil {
		account, err = h.accountService.SetAccountActive(c.Request.Context(), accountID, *req.IsActive)
		if err != nil {
			respondError(c, logger, err, "Failed to update account")
			return
		}
	}
	if account == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) removeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.accountService.RemoveAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to remove account")
		return
	}

	logger.Info("Account removed", slog.String("account_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
