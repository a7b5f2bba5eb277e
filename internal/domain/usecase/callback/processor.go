package callback

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/balance"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/ledger"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/registration"
)

// Notification is one inbound gateway settlement notice
type Notification struct {
	CheckoutRequestID string
	Reference         string
	Status            string
	Signature         string // shared-secret header value, empty when absent
}

// Result acknowledges a processed notification back to the gateway
type Result struct {
	TransactionID string
	Status        entity.TransactionStatus
	Duplicate     bool // true when the notification replayed an already-settled outcome
}

// Processor validates and de-duplicates asynchronous gateway notifications
// and drives ledger transitions.
//
// Ordering is balance-first: the transaction is marked completed only after
// the balance mutation (or registration resolution) succeeds, so a crash in
// between never leaves a completed transaction with no matching balance
// effect. A transaction stuck pending is re-driven safely by the
// reconciliation sweep because the mutation is idempotent per transaction.
type Processor struct {
	ledger       *ledger.Service
	engine       *balance.Engine
	resolver     *registration.Resolver
	logger       coreport.Logger
	sharedSecret string
}

// NewProcessor creates a new gateway callback processor. An empty shared
// secret disables notification authentication.
func NewProcessor(
	ledgerService *ledger.Service,
	engine *balance.Engine,
	resolver *registration.Resolver,
	logger coreport.Logger,
	sharedSecret string,
) *Processor {
	return &Processor{
		ledger:       ledgerService,
		engine:       engine,
		resolver:     resolver,
		logger:       logger,
		sharedSecret: sharedSecret,
	}
}

// Process handles one inbound gateway notification. Any error leaves the
// transaction pending (or terminal as it already was); the gateway is
// expected to retry on a non-success acknowledgment, and retries are safe
// because replays are collapsed by the de-duplication check.
func (p *Processor) Process(ctx context.Context, notification Notification) (*Result, error) {
	if err := p.authenticate(notification); err != nil {
		p.logger.Warn("Rejected unauthenticated gateway notification", map[string]any{
			"checkout_request_id": notification.CheckoutRequestID,
		})
		return nil, err
	}

	target := entity.TransactionStatus(notification.Status)
	if !entity.IsTerminalStatus(target) {
		return nil, fmt.Errorf("%w: gateway status %q is not terminal", errs.ErrInvalidInput, notification.Status)
	}

	if notification.CheckoutRequestID == "" {
		return nil, fmt.Errorf("%w: notification carries no checkout request id", errs.ErrInvalidInput)
	}

	txn, err := p.ledger.GetByCheckoutRequestID(ctx, notification.CheckoutRequestID)
	if err != nil {
		p.logger.Warn("Gateway notification references unknown checkout", map[string]any{
			"checkout_request_id": notification.CheckoutRequestID,
		})
		return nil, err
	}

	// De-duplication: a terminal transaction absorbs replays of the same
	// outcome and alarms on a diverging one.
	if txn.IsTerminal() {
		if txn.Status == target {
			p.logger.Info("Duplicate gateway notification absorbed", map[string]any{
				"transaction_id":      txn.TransactionID,
				"checkout_request_id": notification.CheckoutRequestID,
				"status":              txn.Status,
			})
			return &Result{TransactionID: txn.TransactionID, Status: txn.Status, Duplicate: true}, nil
		}
		conflictErr := errs.NewStatusConflictError(txn.TransactionID, string(txn.Status), string(target))
		p.logger.Error("Gateway notification diverges from recorded outcome", map[string]any{
			"transaction_id":   txn.TransactionID,
			"recorded_status":  txn.Status,
			"requested_status": target,
		})
		return nil, conflictErr
	}

	// Stash the reported outcome before doing any balance work so a crash
	// mid-flight leaves enough state for the reconciliation sweep.
	if err := p.ledger.RecordGatewayOutcome(ctx, txn, target); err != nil {
		return nil, err
	}

	settled, err := p.completePending(ctx, txn, target)
	if err != nil {
		return nil, err
	}

	return &Result{TransactionID: settled.TransactionID, Status: settled.Status}, nil
}

// completePending drives a pending transaction to its terminal state,
// applying side effects before the status write.
func (p *Processor) completePending(
	ctx context.Context,
	txn *entity.Transaction,
	target entity.TransactionStatus,
) (*entity.Transaction, error) {
	if target == entity.StatusFailed {
		return p.ledger.TransitionTerminal(ctx, txn.TransactionID, entity.StatusFailed)
	}

	switch {
	case txn.Kind == entity.KindRegistration:
		user, err := p.resolver.Resolve(ctx, txn)
		if err != nil {
			return nil, err
		}
		if err := p.ledger.BindOwner(ctx, txn, user.ID); err != nil {
			return nil, err
		}

	case txn.IsBalanceAffecting():
		if err := p.applyBalanceEffect(ctx, txn); err != nil {
			return nil, err
		}
	}

	return p.ledger.TransitionTerminal(ctx, txn.TransactionID, entity.StatusCompleted)
}

// applyBalanceEffect invokes the balance engine for a completed
// balance-affecting transaction
func (p *Processor) applyBalanceEffect(ctx context.Context, txn *entity.Transaction) error {
	if txn.AccountID == nil {
		return fmt.Errorf("%w: transaction %s has no owning account", errs.ErrInvalidInput, txn.TransactionID)
	}

	if txn.IsWithdrawal() {
		_, err := p.engine.ApplyWithdrawal(ctx, *txn.AccountID, txn.TransactionID, txn.AmountCents)
		return err
	}

	category, ok := entity.CategoryForKind(txn.Kind)
	if !ok {
		return fmt.Errorf("%w: kind %s maps to no contribution category", errs.ErrInvalidKind, txn.Kind)
	}
	_, err := p.engine.ApplyContribution(ctx, *txn.AccountID, txn.TransactionID,
		map[entity.ContributionCategory]int64{category: txn.AmountCents})
	return err
}

// authenticate compares the notification signature against the configured
// shared secret. Constant-time comparison; no secret configured means the
// check is disabled.
func (p *Processor) authenticate(notification Notification) error {
	if p.sharedSecret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(notification.Signature), []byte(p.sharedSecret)) != 1 {
		return errs.ErrGatewayAuth
	}
	return nil
}
