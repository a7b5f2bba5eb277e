package balance

import (
	"context"
	"errors"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/port/persistence"
)

// DefaultMaxAttempts bounds how many times a lost optimistic-lock race is
// retried before surfacing a concurrency error
const DefaultMaxAttempts = 4

// DefaultBaseDelay is the first backoff interval between retry attempts;
// it doubles on every subsequent attempt
const DefaultBaseDelay = 25 * coreport.Millisecond

// Engine owns per-account balance fields. Every mutation is expressed as
// read-compute-conditional-write against the account's version counter: the
// store-level version check is the only synchronization primitive, so
// concurrent mutations against the same account need no lock manager.
type Engine struct {
	accountRepo  persistence.AccountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxAttempts  int
	baseDelay    coreport.Duration
}

// NewEngine creates a new account balance engine
func NewEngine(
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		accountRepo:  accountRepo,
		timeProvider: timeProvider,
		logger:       logger,
		maxAttempts:  DefaultMaxAttempts,
		baseDelay:    DefaultBaseDelay,
	}
}

// WithRetryPolicy overrides the bounded-retry parameters
func (e *Engine) WithRetryPolicy(maxAttempts int, baseDelay coreport.Duration) *Engine {
	if maxAttempts > 0 {
		e.maxAttempts = maxAttempts
	}
	if baseDelay > 0 {
		e.baseDelay = baseDelay
	}
	return e
}

// ApplyContribution credits an account with the given per-category cent
// amounts and records the driving transaction. Applied at most once per
// transaction identifier: a replay for the already-applied transaction
// returns the current account unchanged.
func (e *Engine) ApplyContribution(
	ctx context.Context,
	accountID uint64,
	transactionID string,
	amountByCategory map[entity.ContributionCategory]int64,
) (*entity.Account, error) {
	return e.mutate(ctx, accountID, transactionID, func(account *entity.Account) error {
		return account.ApplyContribution(amountByCategory, transactionID, e.timeProvider)
	})
}

// ApplyWithdrawal debits an account's available balance. Fails with an
// insufficient funds error when the full amount is not available; no partial
// withdrawal ever happens.
func (e *Engine) ApplyWithdrawal(
	ctx context.Context,
	accountID uint64,
	transactionID string,
	amountCents int64,
) (*entity.Account, error) {
	return e.mutate(ctx, accountID, transactionID, func(account *entity.Account) error {
		return account.ApplyWithdrawal(amountCents, transactionID, e.timeProvider)
	})
}

// mutate runs the read → compute → conditional-write cycle with bounded
// retries on version mismatch. The invariant assertion lives inside the
// entity mutation; an invariant violation aborts immediately and is never
// retried.
func (e *Engine) mutate(
	ctx context.Context,
	accountID uint64,
	transactionID string,
	apply func(*entity.Account) error,
) (*entity.Account, error) {
	var lastVersion uint64
	delay := e.baseDelay

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		account, err := e.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}

		// Replay of an already-applied transaction: the balance effect
		// happened, only the ledger status write was lost. Report success
		// so the caller can finish the transition.
		if account.HasApplied(transactionID) {
			e.logger.Info("Balance mutation replay absorbed", map[string]any{
				"account_id":     accountID,
				"transaction_id": transactionID,
			})
			return account, nil
		}

		expectedVersion := account.Version
		lastVersion = expectedVersion

		if err := apply(account); err != nil {
			return nil, err
		}

		err = e.accountRepo.UpdateWithVersion(ctx, account, expectedVersion)
		if err == nil {
			e.logger.Info("Account balance mutated", map[string]any{
				"account_id":      accountID,
				"transaction_id":  transactionID,
				"version":         account.Version,
				"current_balance": account.CurrentBalanceString(),
			})
			return account, nil
		}

		if !errors.Is(err, errs.ErrVersionMismatch) {
			return nil, err
		}

		e.logger.Warn("Optimistic lock lost, retrying with fresh state", map[string]any{
			"account_id":       accountID,
			"transaction_id":   transactionID,
			"expected_version": expectedVersion,
			"attempt":          attempt,
		})

		if attempt < e.maxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			e.timeProvider.Sleep(delay)
			delay *= 2
		}
	}

	return nil, errs.NewConcurrencyError(accountID, lastVersion, e.maxAttempts)
}
