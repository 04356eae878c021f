package services

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
)

// AccountService covers the account lifecycle around the command engine:
// lookups, renames, activation and removal. Balance mutations stay with the
// commands and the operation service.
type AccountService struct {
	BaseService
	accounts portsrepo.AccountRepository
}

// NewAccountService creates the account management service.
func NewAccountService(accounts portsrepo.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// GetAccount returns one account by id.
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

// ListAccounts returns every account.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.FindAll(ctx)
}

// ListActiveAccounts returns every active account.
func (s *AccountService) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.FindActive(ctx)
}

// RenameAccount changes the account name and persists it.
func (s *AccountService) RenameAccount(ctx context.Context, accountID, name string) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := account.Rename(name); err != nil {
		return nil, err
	}
	if err := s.accounts.Update(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// SetAccountActive activates or deactivates the account.
func (s *AccountService) SetAccountActive(ctx context.Context, accountID string, active bool) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if active {
		account.Activate()
	} else {
		account.Deactivate()
	}
	if err := s.accounts.Update(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// RemoveAccount deletes the account. Only an account whose balance is
// exactly zero can be removed.
func (s *AccountService) RemoveAccount(ctx context.Context, accountID string) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.Balance().IsZero() {
		return fmt.Errorf("cannot delete account %s with balance %s: %w", accountID, account.Balance(), apperrors.ErrDomainRule)
	}
	return s.accounts.Remove(ctx, accountID)
}
