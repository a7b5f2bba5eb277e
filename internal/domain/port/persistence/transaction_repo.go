package persistence

import (
	"context"
	"time"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with
// transaction data. Transactions are append-only: there is no delete.
type TransactionRepository interface {
	// Create saves a new pending transaction
	//
	// Possible errors:
	// - ErrInvalidInput: If transaction data is invalid
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists status, gateway binding, metadata and owner changes.
	// The amount is immutable after creation and is never written back.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrReferenceConflict: If the unique checkout constraint rejects a rebinding
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByTransactionID retrieves a transaction by its globally unique identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction matches
	// - ErrDatabaseConnection: If database connection fails
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// GetByCheckoutRequestID retrieves a transaction by the gateway-assigned
	// checkout identifier. This is the callback de-duplication lookup.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction matches
	// - ErrDatabaseConnection: If database connection fails
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.Transaction, error)

	// ListByAccount returns the transactions recorded against an account,
	// newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByAccount(ctx context.Context, accountID uint64, limit int) ([]*entity.Transaction, error)

	// ListStalePending returns pending transactions created before the given
	// cutoff that already carry a gateway checkout binding. Used by the
	// reconciliation sweep.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Transaction, error)
}
