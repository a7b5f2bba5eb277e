package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
)

// User represents a registered member. Users are materialized by the
// deferred registration resolver once a registration transaction completes.
type User struct {
	ID             uint64
	Email          string
	HashedPassword string
	FirstName      string
	LastName       string
	Phone          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates a new user from resolved registration metadata. The
// credential arrives pre-hashed; this entity never sees a plaintext password.
func NewUser(email, hashedPassword, firstName, lastName, phone string, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", errs.ErrInvalidInput)
	}
	if hashedPassword == "" {
		return nil, fmt.Errorf("%w: hashed credential cannot be empty", errs.ErrInvalidInput)
	}

	now := timeProvider.Now()
	return &User{
		Email:          email,
		HashedPassword: hashedPassword,
		FirstName:      firstName,
		LastName:       lastName,
		Phone:          phone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
