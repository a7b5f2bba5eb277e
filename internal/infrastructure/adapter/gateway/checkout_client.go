package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	gatewayport "github.com/danielmaina/pension-ledger/internal/domain/port/gateway"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/config"
)

// CheckoutClient talks to the payment gateway's checkout API over HTTP.
type CheckoutClient struct {
	baseURL      string
	initiatePath string
	callbackURL  string
	httpClient   *http.Client
	logger       coreport.Logger
}

// NewCheckoutClient creates a checkout client from gateway configuration
func NewCheckoutClient(cfg *config.GatewayConfig, logger coreport.Logger) *CheckoutClient {
	return &CheckoutClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		initiatePath: cfg.InitiatePath,
		callbackURL:  cfg.CallbackURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type initiateRequest struct {
	TransactionID string `json:"transactionId"`
	Amount        string `json:"amount"`
	Description   string `json:"description,omitempty"`
	CallbackURL   string `json:"callbackUrl"`
}

type initiateResponse struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	Reference         string `json:"reference"`
	RedirectURL       string `json:"redirectUrl"`
	Message           string `json:"message,omitempty"`
}

// InitiateCheckout registers the pending transaction with the gateway and
// returns the checkout session the member pays through.
func (c *CheckoutClient) InitiateCheckout(ctx context.Context, transaction *entity.Transaction) (*gatewayport.CheckoutSession, error) {
	payload := initiateRequest{
		TransactionID: transaction.TransactionID,
		Amount:        transaction.Amount,
		Description:   transaction.Description,
		CallbackURL:   c.callbackURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode checkout request: %s", errs.ErrInternalServer, err.Error())
	}

	url := c.baseURL + c.initiatePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build checkout request: %s", errs.ErrInternalServer, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Gateway unreachable", map[string]any{
			"transaction_id": transaction.TransactionID,
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("%w: gateway unreachable: %s", errs.ErrInternalServer, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read gateway response: %s", errs.ErrInternalServer, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Gateway rejected checkout", map[string]any{
			"transaction_id": transaction.TransactionID,
			"status_code":    resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: gateway returned status %d", errs.ErrInternalServer, resp.StatusCode)
	}

	var decoded initiateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("%w: malformed gateway response: %s", errs.ErrInternalServer, err.Error())
	}
	if decoded.CheckoutRequestID == "" {
		return nil, fmt.Errorf("%w: gateway response missing checkout request id", errs.ErrInternalServer)
	}

	c.logger.Info("Checkout initiated", map[string]any{
		"transaction_id":      transaction.TransactionID,
		"checkout_request_id": decoded.CheckoutRequestID,
	})

	return &gatewayport.CheckoutSession{
		CheckoutRequestID: decoded.CheckoutRequestID,
		Reference:         decoded.Reference,
		RedirectURL:       decoded.RedirectURL,
	}, nil
}
