package ledger

import (
	"context"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
)

// TransitionTerminal moves a pending transaction into a terminal state.
//
// The operation is idempotent for replays: if the transaction is already in
// the requested terminal state it returns the existing record. If it is in
// the other terminal state the call fails with a status conflict; state
// divergence is surfaced, never silently overwritten.
func (s *Service) TransitionTerminal(
	ctx context.Context,
	transactionID string,
	target entity.TransactionStatus,
) (*entity.Transaction, error) {
	if transactionID == "" {
		return nil, validationErr("transaction id cannot be empty")
	}
	if !entity.IsTerminalStatus(target) {
		return nil, validationErr("target status %s is not terminal", target)
	}

	txn, err := s.transactionRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	// Idempotent replay: already where the caller wants it
	if txn.Status == target {
		s.logger.Debug("Terminal transition replayed, returning existing record", map[string]any{
			"transaction_id": transactionID,
			"status":         txn.Status,
		})
		return txn, nil
	}

	if txn.IsTerminal() {
		conflictErr := errs.NewStatusConflictError(transactionID, string(txn.Status), string(target))
		s.logger.Error("Terminal status divergence detected", map[string]any{
			"transaction_id":   transactionID,
			"recorded_status":  txn.Status,
			"requested_status": target,
		})
		return nil, conflictErr
	}

	switch target {
	case entity.StatusCompleted:
		err = txn.MarkCompleted(s.timeProvider)
	case entity.StatusFailed:
		err = txn.MarkFailed(s.timeProvider)
	}
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		s.logger.Error("Failed to persist terminal transition", map[string]any{
			"transaction_id": transactionID,
			"target_status":  target,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction transitioned to terminal state", map[string]any{
		"transaction_id": transactionID,
		"status":         txn.Status,
		"kind":           txn.Kind,
	})

	return txn, nil
}
