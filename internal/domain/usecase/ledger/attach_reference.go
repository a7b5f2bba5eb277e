package ledger

import (
	"context"
)

// AttachGatewayReference binds the gateway checkout/reference pair to a
// pending transaction. Calling twice with the same values is a no-op;
// calling with different values once a pair is bound fails with a reference
// conflict, because gateway identifiers are immutable once set.
func (s *Service) AttachGatewayReference(ctx context.Context, transactionID, checkoutID, reference string) error {
	if transactionID == "" {
		return validationErr("transaction id cannot be empty")
	}

	txn, err := s.transactionRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}

	alreadyBound := txn.CheckoutRequestID == checkoutID && txn.GatewayReference == reference
	if alreadyBound {
		return nil
	}

	if err := txn.BindGatewayReference(checkoutID, reference, s.timeProvider); err != nil {
		s.logger.Warn("Rejected gateway reference rebinding", map[string]any{
			"transaction_id":    transactionID,
			"bound_checkout_id": txn.CheckoutRequestID,
			"checkout_id":       checkoutID,
		})
		return err
	}

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		s.logger.Error("Failed to persist gateway reference", map[string]any{
			"transaction_id": transactionID,
			"checkout_id":    checkoutID,
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Gateway reference attached", map[string]any{
		"transaction_id": transactionID,
		"checkout_id":    checkoutID,
		"reference":      reference,
	})

	return nil
}
