package balance

import (
	"context"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
)

// OpenAccount creates a new empty account for a user. A user holds at most
// one account per type; the store's compound unique key rejects a second one.
func (e *Engine) OpenAccount(ctx context.Context, userID uint64, accountType entity.AccountType) (*entity.Account, error) {
	account, err := entity.NewAccount(userID, accountType, e.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := e.accountRepo.Create(ctx, account); err != nil {
		e.logger.Error("Failed to open account", map[string]any{
			"user_id":      userID,
			"account_type": accountType,
			"error":        err.Error(),
		})
		return nil, err
	}

	e.logger.Info("Account opened", map[string]any{
		"account_id":   account.ID,
		"user_id":      userID,
		"account_type": accountType,
	})

	return account, nil
}

// GetAccount returns an account by identifier
func (e *Engine) GetAccount(ctx context.Context, accountID uint64) (*entity.Account, error) {
	return e.accountRepo.GetByID(ctx, accountID)
}

// GetAccountByUserAndType returns the account a user holds for a given type
func (e *Engine) GetAccountByUserAndType(ctx context.Context, userID uint64, accountType entity.AccountType) (*entity.Account, error) {
	return e.accountRepo.GetByUserAndType(ctx, userID, accountType)
}
