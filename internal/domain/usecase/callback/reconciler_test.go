package callback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
)

func TestReconciler_SweepOnce(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()
	staleAfter := 5 * time.Minute
	cutoff := fixedTime.Add(-staleAfter)
	accountID := uint64(7)

	newReconciler := func(f *processorFixture) *Reconciler {
		return NewReconciler(f.txnRepo, f.processor, f.timeProvider, f.logger, time.Minute, staleAfter)
	}

	t.Run("should re-drive a stale pending transaction with a recorded outcome", func(t *testing.T) {
		// Arrange
		f := newProcessorFixture("")
		f.timeProvider.On("Now").Return(fixedTime)

		txn := &entity.Transaction{
			TransactionID:     "txn-stale-1",
			AccountID:         &accountID,
			Kind:              entity.KindPensionContribution,
			Status:            entity.StatusPending,
			Amount:            "100.00",
			AmountCents:       10000,
			CheckoutRequestID: "chk-stale-1",
		}
		txn.SetMetadataValue(entity.MetaGatewayOutcome, string(entity.StatusCompleted))

		account := &entity.Account{
			ID:      accountID,
			UserID:  42,
			Type:    entity.AccountTypeIndividual,
			Status:  entity.AccountActive,
			Version: 1,
		}

		f.txnRepo.On("ListStalePending", ctx, cutoff, 100).Return([]*entity.Transaction{txn}, nil)
		f.txnRepo.On("GetByTransactionID", ctx, "txn-stale-1").Return(txn, nil)
		f.txnRepo.On("Update", ctx, txn).Return(nil)
		f.accountRepo.On("GetByID", ctx, accountID).Return(account, nil)
		f.accountRepo.On("UpdateWithVersion", ctx, account, uint64(1)).Return(nil)
		f.logger.On("Info", "Account balance mutated", mock.AnythingOfType("map[string]interface {}")).Return()
		f.logger.On("Info", "Transaction transitioned to terminal state", mock.AnythingOfType("map[string]interface {}")).Return()
		f.logger.On("Info", "Stale pending transaction reconciled", mock.AnythingOfType("map[string]interface {}")).Return()

		reconciler := newReconciler(f)

		// Act
		reconciler.SweepOnce(ctx)

		// Assert
		assert.Equal(t, entity.StatusCompleted, txn.Status)
		assert.Equal(t, int64(10000), account.CurrentBalance)
		assert.Equal(t, uint64(2), account.Version)

		f.txnRepo.AssertExpectations(t)
		f.accountRepo.AssertExpectations(t)
		f.logger.AssertExpectations(t)
	})

	t.Run("should skip transactions without a recorded gateway verdict", func(t *testing.T) {
		// Arrange
		f := newProcessorFixture("")
		f.timeProvider.On("Now").Return(fixedTime)

		txn := &entity.Transaction{
			TransactionID: "txn-stale-2",
			AccountID:     &accountID,
			Kind:          entity.KindContribution,
			Status:        entity.StatusPending,
			AmountCents:   5000,
		}

		f.txnRepo.On("ListStalePending", ctx, cutoff, 100).Return([]*entity.Transaction{txn}, nil)

		reconciler := newReconciler(f)

		// Act
		reconciler.SweepOnce(ctx)

		// Assert
		assert.Equal(t, entity.StatusPending, txn.Status)
		f.txnRepo.AssertNotCalled(t, "GetByTransactionID", mock.Anything, mock.Anything)
		f.accountRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("should log and return when listing fails", func(t *testing.T) {
		// Arrange
		f := newProcessorFixture("")
		f.timeProvider.On("Now").Return(fixedTime)

		f.txnRepo.On("ListStalePending", ctx, cutoff, 100).Return(nil, errors.New("query timeout"))
		f.logger.On("Error", "Failed to list stale pending transactions", mock.AnythingOfType("map[string]interface {}")).Return()

		reconciler := newReconciler(f)

		// Act
		reconciler.SweepOnce(ctx)

		// Assert
		f.logger.AssertExpectations(t)
	})

	t.Run("should keep sweeping past a transaction that fails to re-drive", func(t *testing.T) {
		// Arrange
		f := newProcessorFixture("")
		f.timeProvider.On("Now").Return(fixedTime)

		broken := &entity.Transaction{
			TransactionID: "txn-stale-3",
			Kind:          entity.KindPensionContribution,
			Status:        entity.StatusPending,
			AmountCents:   5000,
		}
		broken.SetMetadataValue(entity.MetaGatewayOutcome, string(entity.StatusCompleted))

		healthy := &entity.Transaction{
			TransactionID: "txn-stale-4",
			Kind:          entity.KindRegistration,
			Status:        entity.StatusPending,
			AmountCents:   2500,
		}
		healthy.SetMetadataValue(entity.MetaGatewayOutcome, string(entity.StatusFailed))

		f.txnRepo.On("ListStalePending", ctx, cutoff, 100).Return([]*entity.Transaction{broken, healthy}, nil)
		// broken has no owning account so its re-drive fails before any write
		f.txnRepo.On("GetByTransactionID", ctx, "txn-stale-4").Return(healthy, nil)
		f.txnRepo.On("Update", ctx, healthy).Return(nil)
		f.logger.On("Error", "Failed to re-drive stale transaction", mock.AnythingOfType("map[string]interface {}")).Return()
		f.logger.On("Info", "Transaction transitioned to terminal state", mock.AnythingOfType("map[string]interface {}")).Return()
		f.logger.On("Info", "Stale pending transaction reconciled", mock.AnythingOfType("map[string]interface {}")).Return()

		reconciler := newReconciler(f)

		// Act
		reconciler.SweepOnce(ctx)

		// Assert
		assert.Equal(t, entity.StatusPending, broken.Status)
		assert.Equal(t, entity.StatusFailed, healthy.Status)
		f.logger.AssertExpectations(t)
	})
}
