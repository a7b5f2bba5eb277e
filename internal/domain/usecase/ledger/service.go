package ledger

import (
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/port/persistence"
)

// Service owns transaction records and their lifecycle. It is the single
// source of truth for "did money move": transactions are created pending,
// bound to a gateway reference, and transitioned exactly once into a
// terminal state. It never touches account balances.
type Service struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new transaction ledger service
func NewService(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}
