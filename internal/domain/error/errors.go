package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidKind         = 4002
	CodeInvalidInput        = 4003
	CodeInsufficientFunds   = 4004
	CodeGatewayAuth         = 4010
	CodeTransactionNotFound = 4040
	CodeAccountNotFound     = 4041
	CodeUserNotFound        = 4042
	CodeStatusConflict      = 4090
	CodeReferenceConflict   = 4091
	CodeDuplicateAccount    = 4092
	CodeDuplicateUser       = 4093
	CodeVersionMismatch     = 4094

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeInvariantViolation = 5001
)

// Base error types
var (
	// ErrInvalidAmount is returned when the amount is non-positive or not a
	// valid decimal with at most 2 fractional digits
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidKind is returned when the transaction kind is not one of the
	// closed enumeration values
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidInput is returned when a request field fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransactionNotFound is returned when no transaction matches the
	// given identifier or gateway reference
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrStatusConflict is returned when a terminal transition disagrees with
	// the terminal state already recorded. This is a data-integrity alarm and
	// is never auto-resolved.
	ErrStatusConflict = errors.New("transaction is already in a different terminal state")

	// ErrReferenceConflict is returned when a gateway reference is rebound to
	// different values after one is already set
	ErrReferenceConflict = errors.New("gateway reference is already bound")

	// ErrVersionMismatch is returned when a conditional account write loses an
	// optimistic concurrency race. Callers re-read and retry a bounded number
	// of times before surfacing it.
	ErrVersionMismatch = errors.New("account version mismatch")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// available balance
	ErrInsufficientFunds = errors.New("insufficient available balance")

	// ErrInvariantViolation is returned when a balance mutation would break
	// the balance-split invariant. Fatal, never silently corrected.
	ErrInvariantViolation = errors.New("account balance invariant violated")

	// ErrGatewayAuth is returned when a gateway notification carries a
	// missing or mismatched shared secret
	ErrGatewayAuth = errors.New("gateway notification authentication failed")

	// ErrDuplicateAccount is returned when a user already holds an account of
	// the requested type
	ErrDuplicateAccount = errors.New("account of this type already exists for user")

	// ErrDuplicateUser is returned when trying to create a user whose email
	// is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidKind):
		return CodeInvalidKind
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrGatewayAuth):
		return CodeGatewayAuth
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrStatusConflict):
		return CodeStatusConflict
	case errors.Is(err, ErrReferenceConflict):
		return CodeReferenceConflict
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrVersionMismatch):
		return CodeVersionMismatch
	case errors.Is(err, ErrInvariantViolation):
		return CodeInvariantViolation
	default:
		return CodeInternalServer
	}
}

// StatusConflictError carries both terminal states when a callback disagrees
// with the outcome already recorded for a transaction
type StatusConflictError struct {
	TransactionID   string
	RecordedStatus  string
	RequestedStatus string
}

// Error implements the error interface
func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("terminal status conflict for transaction %s: recorded %s, requested %s",
		e.TransactionID, e.RecordedStatus, e.RequestedStatus)
}

// Is checks if the target error is an ErrStatusConflict
func (e *StatusConflictError) Is(target error) bool {
	return target == ErrStatusConflict
}

// LogFields returns a map of fields for structured logging
func (e *StatusConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "status_conflict",
		"transaction_id":   e.TransactionID,
		"recorded_status":  e.RecordedStatus,
		"requested_status": e.RequestedStatus,
		"error_code":       CodeStatusConflict,
	}
}

// NewStatusConflictError creates a new detailed terminal-status conflict error
func NewStatusConflictError(transactionID, recorded, requested string) error {
	return &StatusConflictError{
		TransactionID:   transactionID,
		RecordedStatus:  recorded,
		RequestedStatus: requested,
	}
}

// InsufficientFundsError provides detailed error information for rejected withdrawals
type InsufficientFundsError struct {
	AccountID uint64
	Amount    string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for account %d: required %s, available %s",
		e.AccountID, e.Amount, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "insufficient_funds",
		"account_id":        e.AccountID,
		"amount":            e.Amount,
		"available_balance": e.Available,
		"error_code":        CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID uint64, amount, available string) error {
	return &InsufficientFundsError{
		AccountID: accountID,
		Amount:    amount,
		Available: available,
	}
}

// ConcurrencyError reports an optimistic-lock retry budget that ran out
type ConcurrencyError struct {
	AccountID       uint64
	ExpectedVersion uint64
	Attempts        int
}

// Error implements the error interface
func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf("account %d version mismatch after %d attempts (last expected version %d)",
		e.AccountID, e.Attempts, e.ExpectedVersion)
}

// Is checks if the target error is an ErrVersionMismatch
func (e *ConcurrencyError) Is(target error) bool {
	return target == ErrVersionMismatch
}

// LogFields returns a map of fields for structured logging
func (e *ConcurrencyError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "concurrency",
		"account_id":       e.AccountID,
		"expected_version": e.ExpectedVersion,
		"attempts":         e.Attempts,
		"error_code":       CodeVersionMismatch,
	}
}

// NewConcurrencyError creates a new detailed optimistic-lock error
func NewConcurrencyError(accountID, expectedVersion uint64, attempts int) error {
	return &ConcurrencyError{
		AccountID:       accountID,
		ExpectedVersion: expectedVersion,
		Attempts:        attempts,
	}
}

// InvariantViolationError reports a broken balance split. The mutation that
// detected it must not commit.
type InvariantViolationError struct {
	AccountID        uint64
	CurrentBalance   int64
	AvailableBalance int64
	LockedBalance    int64
}

// Error implements the error interface
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("balance invariant violated for account %d: current=%d available=%d locked=%d",
		e.AccountID, e.CurrentBalance, e.AvailableBalance, e.LockedBalance)
}

// Is checks if the target error is an ErrInvariantViolation
func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// LogFields returns a map of fields for structured logging
func (e *InvariantViolationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "invariant_violation",
		"account_id":        e.AccountID,
		"current_balance":   e.CurrentBalance,
		"available_balance": e.AvailableBalance,
		"locked_balance":    e.LockedBalance,
		"error_code":        CodeInvariantViolation,
	}
}

// IsValidationError checks if the error is any input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidInput)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflictError checks if the error is a state-divergence conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrStatusConflict) ||
		errors.Is(err, ErrReferenceConflict) ||
		errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrDuplicateUser)
}

// IsConcurrencyError checks if the error is an optimistic-lock failure
func IsConcurrencyError(err error) bool {
	return errors.Is(err, ErrVersionMismatch)
}

// IsInsufficientFundsError checks if the error is a rejected withdrawal
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsAuthenticationError checks if the error is a gateway secret mismatch
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrGatewayAuth)
}
