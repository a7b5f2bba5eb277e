package callback

import (
	"context"
	"time"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/port/persistence"
)

// sweepBatchSize caps how many stale transactions one sweep picks up
const sweepBatchSize = 100

// Reconciler periodically re-drives transactions stuck pending after a crash
// between the balance mutation and the terminal status write. Only
// transactions whose metadata carries a recorded gateway outcome are
// eligible: for those the gateway's verdict is known and re-running the
// completion is idempotent.
type Reconciler struct {
	transactionRepo persistence.TransactionRepository
	processor       *Processor
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	interval        time.Duration
	staleAfter      time.Duration
}

// NewReconciler creates a new reconciliation sweep
func NewReconciler(
	transactionRepo persistence.TransactionRepository,
	processor *Processor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	interval time.Duration,
	staleAfter time.Duration,
) *Reconciler {
	return &Reconciler{
		transactionRepo: transactionRepo,
		processor:       processor,
		timeProvider:    timeProvider,
		logger:          logger,
		interval:        interval,
		staleAfter:      staleAfter,
	}
}

// Run loops until the context is canceled, sweeping once per interval
func (r *Reconciler) Run(ctx context.Context) {
	r.logger.Info("Reconciliation sweep started", map[string]any{
		"interval":    r.interval.String(),
		"stale_after": r.staleAfter.String(),
	})

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Reconciliation sweep stopped", nil)
			return
		case <-ticker.C:
			r.SweepOnce(ctx)
		}
	}
}

// SweepOnce re-drives one batch of stale pending transactions. Failures on
// individual transactions are logged and skipped; the next sweep retries
// them.
func (r *Reconciler) SweepOnce(ctx context.Context) {
	cutoff := r.timeProvider.Now().Add(-r.staleAfter)

	stale, err := r.transactionRepo.ListStalePending(ctx, cutoff, sweepBatchSize)
	if err != nil {
		r.logger.Error("Failed to list stale pending transactions", map[string]any{
			"error": err.Error(),
		})
		return
	}

	for _, txn := range stale {
		outcome := entity.TransactionStatus(txn.MetadataValue(entity.MetaGatewayOutcome))
		if !entity.IsTerminalStatus(outcome) {
			// No recorded verdict: the gateway never answered, or answered
			// and the stash write was lost. Nothing safe to re-drive; the
			// gateway's own retry will settle it.
			continue
		}

		if _, err := r.processor.completePending(ctx, txn, outcome); err != nil {
			r.logger.Error("Failed to re-drive stale transaction", map[string]any{
				"transaction_id": txn.TransactionID,
				"outcome":        outcome,
				"error":          err.Error(),
			})
			continue
		}

		r.logger.Info("Stale pending transaction reconciled", map[string]any{
			"transaction_id": txn.TransactionID,
			"outcome":        outcome,
		})
	}
}
