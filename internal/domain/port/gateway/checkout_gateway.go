package gateway

import (
	"context"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
)

// CheckoutSession is the gateway's answer to an initiated checkout: the
// identifiers the callback will later carry, and the URL the member is
// redirected to.
type CheckoutSession struct {
	CheckoutRequestID string
	Reference         string
	RedirectURL       string
}

// CheckoutGateway abstracts the external payment gateway. The core only
// initiates checkouts; settlement arrives asynchronously through the
// callback endpoint, so nothing here blocks on confirmation.
type CheckoutGateway interface {
	// InitiateCheckout hands the pending transaction to the gateway and
	// returns the session the member pays through.
	//
	// Possible errors:
	// - ErrInternalServer: If the gateway rejects or is unreachable
	InitiateCheckout(ctx context.Context, transaction *entity.Transaction) (*CheckoutSession, error)
}
