package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts an account entity to a database model
func (r *AccountRepository) entityToModel(account *entity.Account) model.Account {
	return model.Account{
		ID:                     account.ID,
		UserID:                 account.UserID,
		Type:                   string(account.Type),
		Status:                 string(account.Status),
		CurrentBalance:         account.CurrentBalance,
		AvailableBalance:       account.AvailableBalance,
		LockedBalance:          account.LockedBalance,
		EmployeeContributions:  account.EmployeeContributions,
		EmployerContributions:  account.EmployerContributions,
		VoluntaryContributions: account.VoluntaryContributions,
		InterestEarned:         account.InterestEarned,
		InvestmentReturns:      account.InvestmentReturns,
		DividendsEarned:        account.DividendsEarned,
		TotalWithdrawn:         account.TotalWithdrawn,
		PenaltiesApplied:       account.PenaltiesApplied,
		TaxWithheld:            account.TaxWithheld,
		Version:                account.Version,
		LastTransactionID:      account.LastTransactionID,
		CreatedAt:              account.CreatedAt,
		UpdatedAt:              account.UpdatedAt,
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) *entity.Account {
	return &entity.Account{
		ID:                     accountModel.ID,
		UserID:                 accountModel.UserID,
		Type:                   entity.AccountType(accountModel.Type),
		Status:                 entity.AccountStatus(accountModel.Status),
		CurrentBalance:         accountModel.CurrentBalance,
		AvailableBalance:       accountModel.AvailableBalance,
		LockedBalance:          accountModel.LockedBalance,
		EmployeeContributions:  accountModel.EmployeeContributions,
		EmployerContributions:  accountModel.EmployerContributions,
		VoluntaryContributions: accountModel.VoluntaryContributions,
		InterestEarned:         accountModel.InterestEarned,
		InvestmentReturns:      accountModel.InvestmentReturns,
		DividendsEarned:        accountModel.DividendsEarned,
		TotalWithdrawn:         accountModel.TotalWithdrawn,
		PenaltiesApplied:       accountModel.PenaltiesApplied,
		TaxWithheld:            accountModel.TaxWithheld,
		Version:                accountModel.Version,
		LastTransactionID:      accountModel.LastTransactionID,
		CreatedAt:              accountModel.CreatedAt,
		UpdatedAt:              accountModel.UpdatedAt,
	}
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Account not found", map[string]any{"account_id": id})
			return nil, errs.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account", map[string]any{
			"account_id": id,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&accountModel), nil
}

// GetByUserAndType retrieves the account a user holds for a given type
func (r *AccountRepository) GetByUserAndType(ctx context.Context, userID uint64, accountType entity.AccountType) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(accountType)).
		First(&accountModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&accountModel), nil
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := r.entityToModel(account)

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate account for user and type", map[string]any{
				"user_id":      account.UserID,
				"account_type": account.Type,
			})
			return errs.ErrDuplicateAccount
		}
		r.logger.Error("Failed to create account", map[string]any{
			"user_id": account.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	account.ID = accountModel.ID
	return nil
}

// UpdateWithVersion persists a mutated account only if the stored version
// still equals expectedVersion. A lost race affects zero rows and returns
// ErrVersionMismatch.
func (r *AccountRepository) UpdateWithVersion(ctx context.Context, account *entity.Account, expectedVersion uint64) error {
	accountModel := r.entityToModel(account)

	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND version = ?", account.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":                  accountModel.Status,
			"current_balance":         accountModel.CurrentBalance,
			"available_balance":       accountModel.AvailableBalance,
			"locked_balance":          accountModel.LockedBalance,
			"employee_contributions":  accountModel.EmployeeContributions,
			"employer_contributions":  accountModel.EmployerContributions,
			"voluntary_contributions": accountModel.VoluntaryContributions,
			"interest_earned":         accountModel.InterestEarned,
			"investment_returns":      accountModel.InvestmentReturns,
			"dividends_earned":        accountModel.DividendsEarned,
			"total_withdrawn":         accountModel.TotalWithdrawn,
			"penalties_applied":       accountModel.PenaltiesApplied,
			"tax_withheld":            accountModel.TaxWithheld,
			"version":                 accountModel.Version,
			"last_transaction_id":     accountModel.LastTransactionID,
			"updated_at":              accountModel.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed conditional account update", map[string]any{
			"account_id": account.ID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		// Zero rows means either a stale version or a missing account.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Account{}).
			Where("id = ?", account.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if count == 0 {
			return errs.ErrAccountNotFound
		}
		r.logger.Debug("Account version moved under conditional write", map[string]any{
			"account_id":       account.ID,
			"expected_version": expectedVersion,
		})
		return errs.ErrVersionMismatch
	}

	return nil
}
