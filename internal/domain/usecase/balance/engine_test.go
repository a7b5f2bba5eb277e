package balance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/mocks/port/core"
	"github.com/danielmaina/pension-ledger/mocks/port/persistence"
)

func TestEngine_ApplyContribution(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()
	accountID := uint64(7)
	transactionID := "txn-apply-1"

	freshAccount := func() *entity.Account {
		return &entity.Account{
			ID:      accountID,
			UserID:  42,
			Type:    entity.AccountTypeIndividual,
			Status:  entity.AccountActive,
			Version: 1,
		}
	}

	t.Run("should credit the account on the first attempt", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		account := freshAccount()
		mockAccountRepo.On("GetByID", ctx, accountID).Return(account, nil)
		mockAccountRepo.On("UpdateWithVersion", ctx, account, uint64(1)).Return(nil)
		mockLogger.On("Info", "Account balance mutated", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := engine.ApplyContribution(ctx, accountID, transactionID,
			map[entity.ContributionCategory]int64{entity.CategoryEmployee: 10000})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(10000), result.CurrentBalance)
		assert.Equal(t, int64(10000), result.AvailableBalance)
		assert.Equal(t, int64(10000), result.EmployeeContributions)
		assert.Equal(t, uint64(2), result.Version)
		assert.Equal(t, transactionID, result.LastTransactionID)

		mockAccountRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should re-read and retry after a lost version race", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockTimeProvider.On("Sleep", 25*coreport.Millisecond).Return()

		first := freshAccount()
		second := freshAccount()
		second.Version = 2

		mockAccountRepo.On("GetByID", ctx, accountID).Return(first, nil).Once()
		mockAccountRepo.On("GetByID", ctx, accountID).Return(second, nil).Once()
		mockAccountRepo.On("UpdateWithVersion", ctx, first, uint64(1)).Return(errs.ErrVersionMismatch)
		mockAccountRepo.On("UpdateWithVersion", ctx, second, uint64(2)).Return(nil)
		mockLogger.On("Warn", "Optimistic lock lost, retrying with fresh state", mock.AnythingOfType("map[string]interface {}")).Return()
		mockLogger.On("Info", "Account balance mutated", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := engine.ApplyContribution(ctx, accountID, transactionID,
			map[entity.ContributionCategory]int64{entity.CategoryVoluntary: 5000})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(3), result.Version)
		assert.Equal(t, int64(5000), result.VoluntaryContributions)

		mockAccountRepo.AssertExpectations(t)
		mockTimeProvider.AssertExpectations(t)
	})

	t.Run("should give up with a concurrency error when the retry budget runs out", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockTimeProvider.On("Sleep", 10*coreport.Millisecond).Return().Once()
		mockTimeProvider.On("Sleep", 20*coreport.Millisecond).Return().Once()

		mockAccountRepo.On("GetByID", ctx, accountID).
			Return(func(context.Context, uint64) *entity.Account { return freshAccount() }, nil).
			Times(3)
		mockAccountRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Account"), uint64(1)).
			Return(errs.ErrVersionMismatch).
			Times(3)
		mockLogger.On("Warn", "Optimistic lock lost, retrying with fresh state", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger).
			WithRetryPolicy(3, 10*coreport.Millisecond)

		// Act
		result, err := engine.ApplyContribution(ctx, accountID, transactionID,
			map[entity.ContributionCategory]int64{entity.CategoryEmployee: 10000})

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrVersionMismatch)

		var concurrencyErr *errs.ConcurrencyError
		assert.ErrorAs(t, err, &concurrencyErr)
		assert.Equal(t, accountID, concurrencyErr.AccountID)
		assert.Equal(t, 3, concurrencyErr.Attempts)

		mockAccountRepo.AssertExpectations(t)
		mockTimeProvider.AssertExpectations(t)
	})

	t.Run("should absorb a replay of an already applied transaction", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		account := freshAccount()
		account.CurrentBalance = 10000
		account.AvailableBalance = 10000
		account.EmployeeContributions = 10000
		account.Version = 2
		account.LastTransactionID = transactionID

		mockAccountRepo.On("GetByID", ctx, accountID).Return(account, nil)
		mockLogger.On("Info", "Balance mutation replay absorbed", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := engine.ApplyContribution(ctx, accountID, transactionID,
			map[entity.ContributionCategory]int64{entity.CategoryEmployee: 10000})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, account, result)
		assert.Equal(t, uint64(2), result.Version)
		assert.Equal(t, int64(10000), result.CurrentBalance)

		mockAccountRepo.AssertNotCalled(t, "UpdateWithVersion", mock.Anything, mock.Anything, mock.Anything)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should propagate a read failure without retrying", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockAccountRepo.On("GetByID", ctx, accountID).Return(nil, errs.ErrAccountNotFound)

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := engine.ApplyContribution(ctx, accountID, transactionID,
			map[entity.ContributionCategory]int64{entity.CategoryEmployee: 10000})

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		mockAccountRepo.AssertNumberOfCalls(t, "GetByID", 1)
	})

	t.Run("should propagate non-version write failures without retrying", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		writeErr := errors.New("disk full")
		mockAccountRepo.On("GetByID", ctx, accountID).Return(freshAccount(), nil)
		mockAccountRepo.On("UpdateWithVersion", ctx, mock.AnythingOfType("*entity.Account"), uint64(1)).Return(writeErr)

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := engine.ApplyContribution(ctx, accountID, transactionID,
			map[entity.ContributionCategory]int64{entity.CategoryEmployee: 10000})

		// Assert
		assert.Nil(t, result)
		assert.Equal(t, writeErr, err)
		mockAccountRepo.AssertNumberOfCalls(t, "UpdateWithVersion", 1)
	})
}

func TestEngine_ApplyWithdrawal(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()
	accountID := uint64(7)
	transactionID := "txn-withdraw-1"

	fundedAccount := func() *entity.Account {
		return &entity.Account{
			ID:               accountID,
			UserID:           42,
			Type:             entity.AccountTypeIndividual,
			Status:           entity.AccountActive,
			CurrentBalance:   10000,
			AvailableBalance: 10000,
			Version:          3,
		}
	}

	t.Run("should debit the available balance", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		account := fundedAccount()
		mockAccountRepo.On("GetByID", ctx, accountID).Return(account, nil)
		mockAccountRepo.On("UpdateWithVersion", ctx, account, uint64(3)).Return(nil)
		mockLogger.On("Info", "Account balance mutated", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := engine.ApplyWithdrawal(ctx, accountID, transactionID, 4000)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(6000), result.CurrentBalance)
		assert.Equal(t, int64(6000), result.AvailableBalance)
		assert.Equal(t, int64(4000), result.TotalWithdrawn)
		assert.Equal(t, uint64(4), result.Version)

		mockAccountRepo.AssertExpectations(t)
	})

	t.Run("should reject an overdraft without retrying", func(t *testing.T) {
		// Arrange
		mockAccountRepo := new(persistence.MockAccountRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		account := fundedAccount()
		mockAccountRepo.On("GetByID", ctx, accountID).Return(account, nil)

		engine := NewEngine(mockAccountRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := engine.ApplyWithdrawal(ctx, accountID, transactionID, 20000)

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var fundsErr *errs.InsufficientFundsError
		assert.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, "200.00", fundsErr.Amount)
		assert.Equal(t, "100.00", fundsErr.Available)

		// No mutation committed and no retry attempted
		assert.Equal(t, int64(10000), account.AvailableBalance)
		assert.Equal(t, uint64(3), account.Version)
		mockAccountRepo.AssertNumberOfCalls(t, "GetByID", 1)
		mockAccountRepo.AssertNotCalled(t, "UpdateWithVersion", mock.Anything, mock.Anything, mock.Anything)
	})
}
