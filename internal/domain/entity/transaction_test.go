package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coremocks "github.com/danielmaina/pension-ledger/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction("tx-123", string(KindPensionContribution), "100.50", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "tx-123", tx.TransactionID)
		assert.Equal(t, KindPensionContribution, tx.Kind)
		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, "100.50", tx.Amount)
		assert.Equal(t, int64(10050), tx.AmountCents)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Nil(t, tx.ProcessedAt)
		assert.Nil(t, tx.UserID)
		assert.Nil(t, tx.AccountID)
	})

	t.Run("Amount is normalized to two decimal places", func(t *testing.T) {
		tx, err := NewTransaction("tx-124", string(KindContribution), "100.5", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "100.50", tx.Amount)
		assert.Equal(t, int64(10050), tx.AmountCents)
	})

	t.Run("Empty transaction ID", func(t *testing.T) {
		tx, err := NewTransaction("", string(KindContribution), "100.00", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		tx, err := NewTransaction("tx-125", "lottery_win", "100.00", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidKind)
	})

	t.Run("Zero amount", func(t *testing.T) {
		tx, err := NewTransaction("tx-126", string(KindContribution), "0.00", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative amount", func(t *testing.T) {
		tx, err := NewTransaction("tx-127", string(KindContribution), "-10.00", mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionKindPredicates(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Registration does not affect balances", func(t *testing.T) {
		tx, err := NewTransaction("tx-1", string(KindRegistration), "50.00", mockTime)
		require.NoError(t, err)

		assert.False(t, tx.IsBalanceAffecting())
		assert.False(t, tx.IsWithdrawal())
	})

	t.Run("Contribution kinds affect balances", func(t *testing.T) {
		for _, kind := range []TransactionKind{
			KindPensionContribution, KindPayment, KindContribution, KindEarningsInterest,
		} {
			tx, err := NewTransaction("tx-1", string(kind), "50.00", mockTime)
			require.NoError(t, err)

			assert.True(t, tx.IsBalanceAffecting(), "kind %s", kind)
			assert.False(t, tx.IsWithdrawal(), "kind %s", kind)
		}
	})

	t.Run("Withdrawal is balance affecting and a withdrawal", func(t *testing.T) {
		tx, err := NewTransaction("tx-1", string(KindWithdrawalEarly), "50.00", mockTime)
		require.NoError(t, err)

		assert.True(t, tx.IsBalanceAffecting())
		assert.True(t, tx.IsWithdrawal())
	})
}

func TestBindGatewayReference(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newTx := func(t *testing.T) *Transaction {
		tx, err := NewTransaction("tx-1", string(KindContribution), "50.00", mockTime)
		require.NoError(t, err)
		return tx
	}

	t.Run("First binding succeeds", func(t *testing.T) {
		tx := newTx(t)

		err := tx.BindGatewayReference("co-1", "ref-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "co-1", tx.CheckoutRequestID)
		assert.Equal(t, "ref-1", tx.GatewayReference)
	})

	t.Run("Identical rebinding is a no-op", func(t *testing.T) {
		tx := newTx(t)
		require.NoError(t, tx.BindGatewayReference("co-1", "ref-1", mockTime))

		err := tx.BindGatewayReference("co-1", "ref-1", mockTime)

		assert.NoError(t, err)
	})

	t.Run("Diverging rebinding is a conflict", func(t *testing.T) {
		tx := newTx(t)
		require.NoError(t, tx.BindGatewayReference("co-1", "ref-1", mockTime))

		err := tx.BindGatewayReference("co-2", "ref-2", mockTime)

		assert.ErrorIs(t, err, errs.ErrReferenceConflict)
		assert.Equal(t, "co-1", tx.CheckoutRequestID)
	})

	t.Run("Empty checkout ID rejected", func(t *testing.T) {
		tx := newTx(t)

		err := tx.BindGatewayReference("", "ref-1", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestTerminalTransitions(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newTx := func(t *testing.T) *Transaction {
		tx, err := NewTransaction("tx-1", string(KindContribution), "50.00", mockTime)
		require.NoError(t, err)
		return tx
	}

	t.Run("Pending to completed", func(t *testing.T) {
		tx := newTx(t)

		err := tx.MarkCompleted(mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, tx.Status)
		require.NotNil(t, tx.ProcessedAt)
		assert.Equal(t, fixedTime, *tx.ProcessedAt)
		assert.True(t, tx.IsTerminal())
	})

	t.Run("Pending to failed", func(t *testing.T) {
		tx := newTx(t)

		err := tx.MarkFailed(mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusFailed, tx.Status)
		assert.True(t, tx.IsTerminal())
	})

	t.Run("Same terminal state is a no-op", func(t *testing.T) {
		tx := newTx(t)
		require.NoError(t, tx.MarkCompleted(mockTime))
		processedAt := *tx.ProcessedAt

		err := tx.MarkCompleted(mockTime)

		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, tx.Status)
		assert.Equal(t, processedAt, *tx.ProcessedAt)
	})

	t.Run("Diverging terminal state is a conflict", func(t *testing.T) {
		tx := newTx(t)
		require.NoError(t, tx.MarkCompleted(mockTime))

		err := tx.MarkFailed(mockTime)

		assert.ErrorIs(t, err, errs.ErrStatusConflict)
		assert.Equal(t, StatusCompleted, tx.Status)

		var conflict *errs.StatusConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "tx-1", conflict.TransactionID)
		assert.Equal(t, string(StatusCompleted), conflict.RecordedStatus)
		assert.Equal(t, string(StatusFailed), conflict.RequestedStatus)
	})
}

func TestTransactionMetadata(t *testing.T) {
	t.Run("Nil map is tolerated", func(t *testing.T) {
		tx := &Transaction{}

		assert.Equal(t, "", tx.MetadataValue(MetaEmail))

		tx.SetMetadataValue(MetaEmail, "member@example.com")
		assert.Equal(t, "member@example.com", tx.MetadataValue(MetaEmail))
	})
}
