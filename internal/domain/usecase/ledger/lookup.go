package ledger

import (
	"context"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
)

// GetByTransactionID returns the transaction with the given identifier
func (s *Service) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	if transactionID == "" {
		return nil, validationErr("transaction id cannot be empty")
	}
	return s.transactionRepo.GetByTransactionID(ctx, transactionID)
}

// GetByCheckoutRequestID returns the transaction bound to the given gateway
// checkout identifier
func (s *Service) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.Transaction, error) {
	if checkoutRequestID == "" {
		return nil, validationErr("checkout request id cannot be empty")
	}
	return s.transactionRepo.GetByCheckoutRequestID(ctx, checkoutRequestID)
}

// ListByAccount returns an account's transaction history, newest first
func (s *Service) ListByAccount(ctx context.Context, accountID uint64, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.transactionRepo.ListByAccount(ctx, accountID, limit)
}

// BindOwner persists the owner reference on a transaction. Used by the
// registration resolver once a user is materialized.
func (s *Service) BindOwner(ctx context.Context, txn *entity.Transaction, userID uint64) error {
	txn.BindOwner(userID, s.timeProvider)
	return s.transactionRepo.Update(ctx, txn)
}

// RecordGatewayOutcome stashes the outcome a callback reported into the
// transaction's metadata before any balance work happens. A crash after the
// stash leaves enough state for the reconciliation sweep to re-drive the
// completion safely.
func (s *Service) RecordGatewayOutcome(ctx context.Context, txn *entity.Transaction, outcome entity.TransactionStatus) error {
	if txn.MetadataValue(entity.MetaGatewayOutcome) == string(outcome) {
		return nil
	}
	txn.SetMetadataValue(entity.MetaGatewayOutcome, string(outcome))
	return s.transactionRepo.Update(ctx, txn)
}
