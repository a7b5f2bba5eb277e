package persistence

import (
	"context"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account data.
// Accounts are never deleted, only transitioned to closed.
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If account with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByUserAndType retrieves the account a user holds for a given type
	//
	// Possible errors:
	// - ErrAccountNotFound: If the user holds no account of this type
	// - ErrDatabaseConnection: If database connection fails
	GetByUserAndType(ctx context.Context, userID uint64, accountType entity.AccountType) (*entity.Account, error)

	// Create creates a new account. The (user, type) compound key is unique.
	//
	// Possible errors:
	// - ErrDuplicateAccount: If the user already holds an account of this type
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// UpdateWithVersion conditionally persists a mutated account. The write
	// succeeds only if the stored version still equals expectedVersion; a lost
	// race surfaces as ErrVersionMismatch and the caller must re-read and
	// retry with fresh state. This conditional write is the design's central
	// correctness mechanism for concurrent balance mutations.
	//
	// Possible errors:
	// - ErrVersionMismatch: If the stored version moved under us
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateWithVersion(ctx context.Context, account *entity.Account, expectedVersion uint64) error
}
