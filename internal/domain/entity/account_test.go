package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coremocks "github.com/danielmaina/pension-ledger/mocks/port/core"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount(42, AccountTypeIndividual, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), account.UserID)
		assert.Equal(t, AccountTypeIndividual, account.Type)
		assert.Equal(t, AccountActive, account.Status)
		assert.Equal(t, uint64(1), account.Version)
		assert.Equal(t, int64(0), account.CurrentBalance)
		assert.Equal(t, "", account.LastTransactionID)
		assert.Equal(t, fixedTime, account.CreatedAt)
	})

	t.Run("Zero user ID rejected", func(t *testing.T) {
		account, err := NewAccount(0, AccountTypeIndividual, mockTime)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Unknown account type rejected", func(t *testing.T) {
		account, err := NewAccount(42, AccountType("offshore"), mockTime)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestApplyContribution(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newAccount := func(t *testing.T) *Account {
		account, err := NewAccount(42, AccountTypeIndividual, mockTime)
		require.NoError(t, err)
		return account
	}

	t.Run("Employee contribution credits balance and accumulator", func(t *testing.T) {
		account := newAccount(t)

		err := account.ApplyContribution(map[ContributionCategory]int64{
			CategoryEmployee: 10000,
		}, "tx-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), account.CurrentBalance)
		assert.Equal(t, int64(10000), account.AvailableBalance)
		assert.Equal(t, int64(10000), account.EmployeeContributions)
		assert.Equal(t, uint64(2), account.Version)
		assert.Equal(t, "tx-1", account.LastTransactionID)
	})

	t.Run("Multiple categories accumulate separately", func(t *testing.T) {
		account := newAccount(t)

		err := account.ApplyContribution(map[ContributionCategory]int64{
			CategoryEmployee: 6000,
			CategoryEmployer: 4000,
		}, "tx-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), account.CurrentBalance)
		assert.Equal(t, int64(6000), account.EmployeeContributions)
		assert.Equal(t, int64(4000), account.EmployerContributions)
	})

	t.Run("Interest feeds the interest accumulator", func(t *testing.T) {
		account := newAccount(t)

		err := account.ApplyContribution(map[ContributionCategory]int64{
			CategoryInterest: 500,
		}, "tx-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(500), account.InterestEarned)
		assert.Equal(t, int64(500), account.CurrentBalance)
	})

	t.Run("Non-positive amount rejected without mutation", func(t *testing.T) {
		account := newAccount(t)

		err := account.ApplyContribution(map[ContributionCategory]int64{
			CategoryEmployee: 0,
		}, "tx-1", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, uint64(1), account.Version)
		assert.Equal(t, "", account.LastTransactionID)
	})

	t.Run("Empty category map rejected", func(t *testing.T) {
		account := newAccount(t)

		err := account.ApplyContribution(map[ContributionCategory]int64{}, "tx-1", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestApplyWithdrawal(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	fundedAccount := func(t *testing.T) *Account {
		account, err := NewAccount(42, AccountTypeIndividual, mockTime)
		require.NoError(t, err)
		require.NoError(t, account.ApplyContribution(map[ContributionCategory]int64{
			CategoryEmployee: 10000,
		}, "tx-fund", mockTime))
		return account
	}

	t.Run("Full withdrawal within available balance", func(t *testing.T) {
		account := fundedAccount(t)

		err := account.ApplyWithdrawal(4000, "tx-w", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(6000), account.CurrentBalance)
		assert.Equal(t, int64(6000), account.AvailableBalance)
		assert.Equal(t, int64(4000), account.TotalWithdrawn)
		assert.Equal(t, uint64(3), account.Version)
		assert.Equal(t, "tx-w", account.LastTransactionID)
	})

	t.Run("Insufficient funds rejected without partial debit", func(t *testing.T) {
		account := fundedAccount(t)

		err := account.ApplyWithdrawal(20000, "tx-w", mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(10000), account.CurrentBalance)
		assert.Equal(t, uint64(2), account.Version)

		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "200.00", detailed.Amount)
		assert.Equal(t, "100.00", detailed.Available)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		account := fundedAccount(t)

		err := account.ApplyWithdrawal(0, "tx-w", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestCheckInvariant(t *testing.T) {
	t.Run("Balanced split passes", func(t *testing.T) {
		account := &Account{CurrentBalance: 100, AvailableBalance: 70, LockedBalance: 30}

		assert.NoError(t, account.CheckInvariant())
	})

	t.Run("Broken split fails", func(t *testing.T) {
		account := &Account{ID: 7, CurrentBalance: 100, AvailableBalance: 70, LockedBalance: 40}

		err := account.CheckInvariant()

		assert.ErrorIs(t, err, errs.ErrInvariantViolation)

		var violation *errs.InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, uint64(7), violation.AccountID)
	})
}

func TestHasApplied(t *testing.T) {
	account := &Account{LastTransactionID: "tx-1"}

	assert.True(t, account.HasApplied("tx-1"))
	assert.False(t, account.HasApplied("tx-2"))
	assert.False(t, account.HasApplied(""))

	empty := &Account{}
	assert.False(t, empty.HasApplied(""))
}

func TestCategoryForKind(t *testing.T) {
	testCases := []struct {
		kind     TransactionKind
		category ContributionCategory
		ok       bool
	}{
		{KindPensionContribution, CategoryEmployee, true},
		{KindContribution, CategoryVoluntary, true},
		{KindPayment, CategoryVoluntary, true},
		{KindEarningsInterest, CategoryInterest, true},
		{KindWithdrawalEarly, "", false},
		{KindRegistration, "", false},
	}

	for _, tc := range testCases {
		category, ok := CategoryForKind(tc.kind)
		assert.Equal(t, tc.ok, ok, "kind %s", tc.kind)
		assert.Equal(t, tc.category, category, "kind %s", tc.kind)
	}
}
