package entity

import (
	"fmt"
	"time"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
)

// AccountType distinguishes the holdings a user may open. A user holds at
// most one account per type.
type AccountType string

// Account types
const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeEmployer   AccountType = "employer_sponsored"
	AccountTypeVoluntary  AccountType = "voluntary"
)

// AccountStatus defines possible status values for an account
type AccountStatus string

// AccountStatus constants
const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
	AccountClosed    AccountStatus = "closed"
	AccountFrozen    AccountStatus = "frozen"
	AccountDeceased  AccountStatus = "deceased"
)

// ContributionCategory selects which accumulator a contribution feeds
type ContributionCategory string

// Contribution categories
const (
	CategoryEmployee   ContributionCategory = "employee"
	CategoryEmployer   ContributionCategory = "employer"
	CategoryVoluntary  ContributionCategory = "voluntary"
	CategoryInterest   ContributionCategory = "interest"
	CategoryInvestment ContributionCategory = "investment"
	CategoryDividends  ContributionCategory = "dividends"
)

// Account represents one user's holding within one account type. All
// monetary fields are cents. Version is the optimistic-lock token: it
// increases by exactly 1 on every successful mutation and conditional writes
// key on it.
type Account struct {
	ID     uint64
	UserID uint64
	Type   AccountType
	Status AccountStatus

	CurrentBalance   int64
	AvailableBalance int64
	LockedBalance    int64

	EmployeeContributions  int64
	EmployerContributions  int64
	VoluntaryContributions int64
	InterestEarned         int64
	InvestmentReturns      int64
	DividendsEarned        int64
	TotalWithdrawn         int64
	PenaltiesApplied       int64
	TaxWithheld            int64

	Version           uint64
	LastTransactionID string // Most recently applied transaction, the at-most-once guard
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewAccount creates a new empty active account for the given user and type
func NewAccount(userID uint64, accountType AccountType, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id must be positive", errs.ErrInvalidInput)
	}
	if !IsValidAccountType(string(accountType)) {
		return nil, fmt.Errorf("%w: unknown account type %s", errs.ErrInvalidInput, accountType)
	}

	now := timeProvider.Now()
	return &Account{
		UserID:    userID,
		Type:      accountType,
		Status:    AccountActive,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CheckInvariant re-derives the balance-split invariant
// currentBalance == availableBalance + lockedBalance. A violation means the
// row was corrupted upstream and the surrounding mutation must not commit.
func (a *Account) CheckInvariant() error {
	if a.CurrentBalance != a.AvailableBalance+a.LockedBalance {
		return &errs.InvariantViolationError{
			AccountID:        a.ID,
			CurrentBalance:   a.CurrentBalance,
			AvailableBalance: a.AvailableBalance,
			LockedBalance:    a.LockedBalance,
		}
	}
	return nil
}

// ApplyContribution credits the account with the given per-category amounts,
// bumps the version and records the driving transaction. The invariant is
// asserted after mutating.
func (a *Account) ApplyContribution(
	amountByCategory map[ContributionCategory]int64,
	transactionID string,
	timeProvider coreport.TimeProvider,
) error {
	var total int64
	for category, cents := range amountByCategory {
		if cents <= 0 {
			return fmt.Errorf("%w: non-positive amount for category %s", errs.ErrInvalidAmount, category)
		}
		switch category {
		case CategoryEmployee:
			a.EmployeeContributions += cents
		case CategoryEmployer:
			a.EmployerContributions += cents
		case CategoryVoluntary:
			a.VoluntaryContributions += cents
		case CategoryInterest:
			a.InterestEarned += cents
		case CategoryInvestment:
			a.InvestmentReturns += cents
		case CategoryDividends:
			a.DividendsEarned += cents
		default:
			return fmt.Errorf("%w: unknown contribution category %s", errs.ErrInvalidInput, category)
		}
		total += cents
	}
	if total == 0 {
		return fmt.Errorf("%w: contribution must carry at least one category amount", errs.ErrInvalidAmount)
	}

	a.CurrentBalance += total
	a.AvailableBalance += total
	a.commit(transactionID, timeProvider)

	return a.CheckInvariant()
}

// ApplyWithdrawal debits the available balance. No partial withdrawal: the
// full amount must be available or the call fails.
func (a *Account) ApplyWithdrawal(
	amountCents int64,
	transactionID string,
	timeProvider coreport.TimeProvider,
) error {
	if amountCents <= 0 {
		return fmt.Errorf("%w: withdrawal amount must be positive", errs.ErrInvalidAmount)
	}
	if a.AvailableBalance < amountCents {
		return errs.NewInsufficientFundsError(a.ID, FormatCents(amountCents), FormatCents(a.AvailableBalance))
	}

	a.AvailableBalance -= amountCents
	a.CurrentBalance -= amountCents
	a.TotalWithdrawn += amountCents
	a.commit(transactionID, timeProvider)

	return a.CheckInvariant()
}

// commit records the version bump and back-reference shared by every mutation
func (a *Account) commit(transactionID string, timeProvider coreport.TimeProvider) {
	a.Version++
	a.LastTransactionID = transactionID
	a.UpdatedAt = timeProvider.Now()
}

// HasApplied reports whether the given transaction was the most recently
// applied one. Used to absorb replays of the crash-recovery window between
// balance application and the terminal status write.
func (a *Account) HasApplied(transactionID string) bool {
	return transactionID != "" && a.LastTransactionID == transactionID
}

// CurrentBalanceString returns the current balance as a 2dp decimal string
func (a *Account) CurrentBalanceString() string {
	return FormatCents(a.CurrentBalance)
}

// AvailableBalanceString returns the available balance as a 2dp decimal string
func (a *Account) AvailableBalanceString() string {
	return FormatCents(a.AvailableBalance)
}

// IsValidAccountType validates if the account type is allowed
func IsValidAccountType(accountType string) bool {
	switch AccountType(accountType) {
	case AccountTypeIndividual, AccountTypeEmployer, AccountTypeVoluntary:
		return true
	default:
		return false
	}
}

// IsValidCategory validates if the contribution category is allowed
func IsValidCategory(category string) bool {
	switch ContributionCategory(category) {
	case CategoryEmployee, CategoryEmployer, CategoryVoluntary,
		CategoryInterest, CategoryInvestment, CategoryDividends:
		return true
	default:
		return false
	}
}

// CategoryForKind maps a transaction kind to the accumulator its completed
// amount feeds
func CategoryForKind(kind TransactionKind) (ContributionCategory, bool) {
	switch kind {
	case KindPensionContribution:
		return CategoryEmployee, true
	case KindContribution, KindPayment:
		return CategoryVoluntary, true
	case KindEarningsInterest:
		return CategoryInterest, true
	default:
		return "", false
	}
}
