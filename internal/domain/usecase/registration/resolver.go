package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/port/persistence"
)

// Resolver materializes user accounts from completed registration
// transactions. The prospective member's identity fields and pre-hashed
// credential live in the transaction's metadata until the registration fee
// settles; only then does a user record become visible. A failed
// registration needs no compensating action because no partial state was
// ever visible.
type Resolver struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewResolver creates a new deferred registration resolver
func NewResolver(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Resolver {
	return &Resolver{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Resolve finds or creates the user carried in a registration transaction's
// metadata. Idempotent: a retried callback for the same registration finds
// the existing user by email and never creates a duplicate. The returned
// user is the one the transaction's owner reference must be bound to.
func (r *Resolver) Resolve(ctx context.Context, txn *entity.Transaction) (*entity.User, error) {
	if txn.Kind != entity.KindRegistration {
		return nil, fmt.Errorf("%w: transaction %s is not a registration", errs.ErrInvalidInput, txn.TransactionID)
	}

	email := strings.ToLower(strings.TrimSpace(txn.MetadataValue(entity.MetaEmail)))
	if email == "" {
		return nil, fmt.Errorf("%w: registration %s carries no email", errs.ErrInvalidInput, txn.TransactionID)
	}

	existing, err := r.userRepo.GetByEmail(ctx, email)
	if err == nil {
		r.logger.Info("Registration resolved to existing user", map[string]any{
			"transaction_id": txn.TransactionID,
			"user_id":        existing.ID,
		})
		return existing, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err := entity.NewUser(
		email,
		txn.MetadataValue(entity.MetaHashedPassword),
		txn.MetadataValue(entity.MetaFirstName),
		txn.MetadataValue(entity.MetaLastName),
		txn.MetadataValue(entity.MetaPhone),
		r.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := r.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent retry of the same callback;
		// the winner's user record is the one we want.
		if errors.Is(err, errs.ErrDuplicateUser) {
			return r.userRepo.GetByEmail(ctx, email)
		}
		r.logger.Error("Failed to materialize user from registration", map[string]any{
			"transaction_id": txn.TransactionID,
			"error":          err.Error(),
		})
		return nil, err
	}

	r.logger.Info("User materialized from registration", map[string]any{
		"transaction_id": txn.TransactionID,
		"user_id":        user.ID,
	})

	return user, nil
}
