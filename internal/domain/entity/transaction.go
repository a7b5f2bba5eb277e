package entity

import (
	"fmt"
	"time"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
)

// TransactionKind is the closed enumeration of monetary intents
type TransactionKind string

// Transaction kinds
const (
	KindRegistration        TransactionKind = "registration"
	KindPensionContribution TransactionKind = "pension_contribution"
	KindPayment             TransactionKind = "payment"
	KindContribution        TransactionKind = "contribution"
	KindWithdrawalEarly     TransactionKind = "withdrawal_early"
	KindEarningsInterest    TransactionKind = "earnings_interest"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants. Pending is the only non-terminal state;
// completed and failed are terminal and never transition again.
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Metadata keys used by the deferred registration flow and the callback
// processor's reconciliation stash
const (
	MetaEmail          = "email"
	MetaHashedPassword = "hashedPassword"
	MetaFirstName      = "firstName"
	MetaLastName       = "lastName"
	MetaPhone          = "phone"
	MetaGatewayOutcome = "gatewayOutcome"
)

// Transaction represents one monetary intent against a pension account.
// Records are append-only: a transaction is created pending and mutated
// exactly once into a terminal state.
type Transaction struct {
	ID                uint64            // Surrogate store identifier
	TransactionID     string            // Globally unique identifier, immutable once assigned
	UserID            *uint64           // Owning user, nil until resolved (registration)
	AccountID         *uint64           // Owning account, nil for registration
	Kind              TransactionKind   // Kind of monetary intent
	Status            TransactionStatus // pending, completed or failed
	Amount            string            // Amount as a string with 2 decimal places
	AmountCents       int64             // Amount in cents for precise arithmetic
	Description       string            // Optional free-text description
	Metadata          map[string]string // Opaque metadata (registration payload, gateway stash)
	CheckoutRequestID string            // Gateway-assigned checkout identifier, unique once set
	GatewayReference  string            // Gateway settlement reference, bound with the checkout id
	CreatedAt         time.Time         // When the transaction was created
	UpdatedAt         time.Time         // When the transaction was last updated
	ProcessedAt       *time.Time        // When the terminal transition happened (nullable)
}

// NewTransaction creates a new pending transaction with basic validation.
// It never touches an account; balance effects happen only on terminal
// transition through the callback processor.
func NewTransaction(
	transactionID string,
	kind string,
	amount string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction id cannot be empty", errs.ErrInvalidInput)
	}
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidKind, kind)
	}

	amountCents, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Transaction{
		TransactionID: transactionID,
		Kind:          TransactionKind(kind),
		Status:        StatusPending,
		Amount:        FormatCents(amountCents),
		AmountCents:   amountCents,
		Metadata:      map[string]string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsTerminal reports whether the transaction reached a terminal state
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// IsBalanceAffecting reports whether a completed transaction of this kind
// must be applied to an account balance
func (t *Transaction) IsBalanceAffecting() bool {
	switch t.Kind {
	case KindPensionContribution, KindPayment, KindContribution,
		KindWithdrawalEarly, KindEarningsInterest:
		return true
	default:
		return false
	}
}

// IsWithdrawal reports whether this kind decreases the account balance
func (t *Transaction) IsWithdrawal() bool {
	return t.Kind == KindWithdrawalEarly
}

// BindGatewayReference binds the gateway checkout/reference pair. Rebinding
// with identical values is a no-op; rebinding with different values is a
// conflict because gateway identifiers are immutable once set.
func (t *Transaction) BindGatewayReference(checkoutID, reference string, timeProvider coreport.TimeProvider) error {
	if checkoutID == "" {
		return fmt.Errorf("%w: checkout id cannot be empty", errs.ErrInvalidInput)
	}
	if t.CheckoutRequestID == "" && t.GatewayReference == "" {
		t.CheckoutRequestID = checkoutID
		t.GatewayReference = reference
		t.UpdatedAt = timeProvider.Now()
		return nil
	}
	if t.CheckoutRequestID == checkoutID && t.GatewayReference == reference {
		return nil
	}
	return fmt.Errorf("%w: transaction %s already bound to checkout %s",
		errs.ErrReferenceConflict, t.TransactionID, t.CheckoutRequestID)
}

// MarkCompleted transitions the transaction to completed. Only callable from
// pending; terminal states never transition again.
func (t *Transaction) MarkCompleted(timeProvider coreport.TimeProvider) error {
	return t.transition(StatusCompleted, timeProvider)
}

// MarkFailed transitions the transaction to failed
func (t *Transaction) MarkFailed(timeProvider coreport.TimeProvider) error {
	return t.transition(StatusFailed, timeProvider)
}

func (t *Transaction) transition(target TransactionStatus, timeProvider coreport.TimeProvider) error {
	if t.Status == target {
		return nil
	}
	if t.IsTerminal() {
		return errs.NewStatusConflictError(t.TransactionID, string(t.Status), string(target))
	}
	now := timeProvider.Now()
	t.Status = target
	t.ProcessedAt = &now
	t.UpdatedAt = now
	return nil
}

// BindOwner sets the owning user reference once the deferred registration
// resolver materializes the user
func (t *Transaction) BindOwner(userID uint64, timeProvider coreport.TimeProvider) {
	t.UserID = &userID
	t.UpdatedAt = timeProvider.Now()
}

// MetadataValue returns a metadata value, tolerating a nil map
func (t *Transaction) MetadataValue(key string) string {
	if t.Metadata == nil {
		return ""
	}
	return t.Metadata[key]
}

// SetMetadataValue stores a metadata value, allocating the map when needed
func (t *Transaction) SetMetadataValue(key, value string) {
	if t.Metadata == nil {
		t.Metadata = map[string]string{}
	}
	t.Metadata[key] = value
}

// IsValidKind validates if the kind is one of the closed enumeration values
func IsValidKind(kind string) bool {
	switch TransactionKind(kind) {
	case KindRegistration, KindPensionContribution, KindPayment,
		KindContribution, KindWithdrawalEarly, KindEarningsInterest:
		return true
	default:
		return false
	}
}

// IsValidStatus validates if the status is one of the allowed values
func IsValidStatus(status string) bool {
	switch TransactionStatus(status) {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminalStatus reports whether the given status is terminal
func IsTerminalStatus(status TransactionStatus) bool {
	return status == StatusCompleted || status == StatusFailed
}
