package repository

import (
	"strings"
)

// ErrorClassifier recognizes driver error categories the repositories map
// onto domain sentinels. GORM surfaces postgres violations as opaque error
// strings, so recognition is substring based.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique constraint rejection.
// The repositories translate these into ErrDuplicateUser, ErrDuplicateAccount
// or ErrReferenceConflict depending on which unique key rejected the write.
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "Duplicate entry")
}
