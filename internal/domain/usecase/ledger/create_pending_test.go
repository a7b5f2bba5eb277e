package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	"github.com/danielmaina/pension-ledger/mocks/port/core"
	"github.com/danielmaina/pension-ledger/mocks/port/persistence"
)

func TestService_CreatePending(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("should create a pending transaction with normalized amount", func(t *testing.T) {
		// Arrange
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		userID := uint64(42)
		accountID := uint64(7)

		mockTxnRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				txn := args.Get(1).(*entity.Transaction)
				assert.NotEmpty(t, txn.TransactionID)
				assert.Equal(t, entity.KindPensionContribution, txn.Kind)
				assert.Equal(t, entity.StatusPending, txn.Status)
				assert.Equal(t, "150.50", txn.Amount)
				assert.Equal(t, int64(15050), txn.AmountCents)
				assert.Equal(t, userID, *txn.UserID)
				assert.Equal(t, accountID, *txn.AccountID)
				assert.Equal(t, "Monthly contribution", txn.Description)
				assert.Equal(t, "jane@example.com", txn.MetadataValue(entity.MetaEmail))
			}).
			Return(nil)
		mockLogger.On("Info", "Pending transaction created", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockTxnRepo, mockTimeProvider, mockLogger)

		// Act
		txn, err := service.CreatePending(ctx, CreatePendingInput{
			Kind:        string(entity.KindPensionContribution),
			Amount:      "150.5",
			UserID:      &userID,
			AccountID:   &accountID,
			Description: "Monthly contribution",
			Metadata:    map[string]string{entity.MetaEmail: "jane@example.com"},
		})

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, txn)
		assert.Equal(t, fixedTime, txn.CreatedAt)

		mockTxnRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject an unknown kind without persisting", func(t *testing.T) {
		// Arrange
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockTxnRepo, mockTimeProvider, mockLogger)

		// Act
		txn, err := service.CreatePending(ctx, CreatePendingInput{
			Kind:   "lottery_win",
			Amount: "10.00",
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidKind)

		mockTxnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject a non-positive amount without persisting", func(t *testing.T) {
		// Arrange
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockTxnRepo, mockTimeProvider, mockLogger)

		// Act
		txn, err := service.CreatePending(ctx, CreatePendingInput{
			Kind:   string(entity.KindContribution),
			Amount: "0",
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		mockTxnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		// Arrange
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		repoErr := errors.New("connection refused")
		mockTxnRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(repoErr)
		mockLogger.On("Error", "Failed to persist pending transaction", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockTxnRepo, mockTimeProvider, mockLogger)

		// Act
		txn, err := service.CreatePending(ctx, CreatePendingInput{
			Kind:   string(entity.KindRegistration),
			Amount: "25.00",
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)
		assert.Equal(t, repoErr, err)

		mockTxnRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})
}
