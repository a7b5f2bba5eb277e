package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
)

// CreatePendingInput is the validated, closed input for creating a monetary
// intent. Enumeration checks happen before any mutation.
type CreatePendingInput struct {
	Kind        string
	Amount      string
	UserID      *uint64
	AccountID   *uint64
	Description string
	Metadata    map[string]string
}

// CreatePending creates a durable pending transaction with a freshly
// generated identifier. It does not touch any account.
func (s *Service) CreatePending(ctx context.Context, input CreatePendingInput) (*entity.Transaction, error) {
	txn, err := entity.NewTransaction(uuid.NewString(), input.Kind, input.Amount, s.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("invalid intent: %w", err)
	}

	txn.UserID = input.UserID
	txn.AccountID = input.AccountID
	txn.Description = input.Description
	for key, value := range input.Metadata {
		txn.SetMetadataValue(key, value)
	}

	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to persist pending transaction", map[string]any{
			"transaction_id": txn.TransactionID,
			"kind":           input.Kind,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Pending transaction created", map[string]any{
		"transaction_id": txn.TransactionID,
		"kind":           txn.Kind,
		"amount":         txn.Amount,
	})

	return txn, nil
}

// validationErr wraps an input problem so callers can classify it
func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidInput, fmt.Sprintf(format, args...))
}
