package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidKind", ErrInvalidKind, 4002},
		{"InvalidInput", ErrInvalidInput, 4003},
		{"InsufficientFunds", ErrInsufficientFunds, 4004},
		{"GatewayAuth", ErrGatewayAuth, 4010},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"AccountNotFound", ErrAccountNotFound, 4041},
		{"UserNotFound", ErrUserNotFound, 4042},
		{"StatusConflict", ErrStatusConflict, 4090},
		{"ReferenceConflict", ErrReferenceConflict, 4091},
		{"DuplicateAccount", ErrDuplicateAccount, 4092},
		{"DuplicateUser", ErrDuplicateUser, 4093},
		{"VersionMismatch", ErrVersionMismatch, 4094},
		{"InvariantViolation", ErrInvariantViolation, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidInput), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestStatusConflictError(t *testing.T) {
	err := NewStatusConflictError("tx-1", "completed", "failed")

	expectedMsg := "terminal status conflict for transaction tx-1: recorded completed, requested failed"
	if err.Error() != expectedMsg {
		t.Errorf("Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !errors.Is(err, ErrStatusConflict) {
		t.Error("errors.Is(err, ErrStatusConflict) = false, want true")
	}
	if ErrorCode(err) != CodeStatusConflict {
		t.Errorf("ErrorCode(err) = %d, want %d", ErrorCode(err), CodeStatusConflict)
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(7, "200.00", "100.00")

	expectedMsg := "insufficient funds for account 7: required 200.00, available 100.00"
	if err.Error() != expectedMsg {
		t.Errorf("Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}
}

func TestConcurrencyError(t *testing.T) {
	err := NewConcurrencyError(7, 3, 4)

	if !errors.Is(err, ErrVersionMismatch) {
		t.Error("errors.Is(err, ErrVersionMismatch) = false, want true")
	}
	if ErrorCode(err) != CodeVersionMismatch {
		t.Errorf("ErrorCode(err) = %d, want %d", ErrorCode(err), CodeVersionMismatch)
	}
}

func TestInvariantViolationError(t *testing.T) {
	err := &InvariantViolationError{
		AccountID:        7,
		CurrentBalance:   100,
		AvailableBalance: 70,
		LockedBalance:    40,
	}

	if !errors.Is(err, ErrInvariantViolation) {
		t.Error("errors.Is(err, ErrInvariantViolation) = false, want true")
	}
	if ErrorCode(err) != CodeInvariantViolation {
		t.Errorf("ErrorCode(err) = %d, want %d", ErrorCode(err), CodeInvariantViolation)
	}
}

func TestClassificationHelpers(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		check    func(error) bool
		expected bool
	}{
		{"validation true", ErrInvalidAmount, IsValidationError, true},
		{"validation wrapped", fmt.Errorf("x: %w", ErrInvalidInput), IsValidationError, true},
		{"validation false", ErrUserNotFound, IsValidationError, false},
		{"not found true", ErrAccountNotFound, IsNotFoundError, true},
		{"not found false", ErrInvalidAmount, IsNotFoundError, false},
		{"conflict status", NewStatusConflictError("tx", "completed", "failed"), IsConflictError, true},
		{"conflict duplicate", ErrDuplicateUser, IsConflictError, true},
		{"conflict false", ErrInvalidAmount, IsConflictError, false},
		{"concurrency true", NewConcurrencyError(1, 1, 4), IsConcurrencyError, true},
		{"concurrency false", ErrStatusConflict, IsConcurrencyError, false},
		{"insufficient true", NewInsufficientFundsError(1, "2.00", "1.00"), IsInsufficientFundsError, true},
		{"auth true", ErrGatewayAuth, IsAuthenticationError, true},
		{"auth false", ErrUserNotFound, IsAuthenticationError, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.check(tc.err); got != tc.expected {
				t.Errorf("check(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}
