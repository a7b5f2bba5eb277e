package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	gatewayport "github.com/danielmaina/pension-ledger/internal/domain/port/gateway"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/balance"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/ledger"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/dto"
)

// IntentHandler handles contribution and withdrawal intents. An intent only
// creates a pending transaction and opens a gateway checkout; the balance
// moves when the gateway confirms settlement through the callback.
type IntentHandler struct {
	ledgerService   *ledger.Service
	engine          *balance.Engine
	checkoutGateway gatewayport.CheckoutGateway
	logger          coreport.Logger
}

// NewIntentHandler creates a new intent handler instance
func NewIntentHandler(
	ledgerService *ledger.Service,
	engine *balance.Engine,
	checkoutGateway gatewayport.CheckoutGateway,
	logger coreport.Logger,
) *IntentHandler {
	return &IntentHandler{
		ledgerService:   ledgerService,
		engine:          engine,
		checkoutGateway: checkoutGateway,
		logger:          logger,
	}
}

// CreateContribution handles the POST /accounts/:accountId/contributions endpoint
func (h *IntentHandler) CreateContribution(c *gin.Context) {
	kindAllowed := func(kind entity.TransactionKind) bool {
		switch kind {
		case entity.KindPensionContribution, entity.KindContribution,
			entity.KindPayment, entity.KindEarningsInterest:
			return true
		}
		return false
	}
	h.createIntent(c, string(entity.KindPensionContribution), kindAllowed)
}

// CreateWithdrawal handles the POST /accounts/:accountId/withdrawals endpoint
func (h *IntentHandler) CreateWithdrawal(c *gin.Context) {
	kindAllowed := func(kind entity.TransactionKind) bool {
		return kind == entity.KindWithdrawalEarly
	}
	h.createIntent(c, string(entity.KindWithdrawalEarly), kindAllowed)
}

func (h *IntentHandler) createIntent(
	c *gin.Context,
	defaultKind string,
	kindAllowed func(entity.TransactionKind) bool,
) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidInput),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = defaultKind
	}
	if !entity.IsValidKind(kind) || !kindAllowed(entity.TransactionKind(kind)) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidKind),
			Message: "Invalid transaction kind for this operation",
		})
		return
	}

	account, err := h.engine.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	txn, err := h.ledgerService.CreatePending(c.Request.Context(), ledger.CreatePendingInput{
		Kind:        kind,
		Amount:      req.Amount,
		UserID:      &account.UserID,
		AccountID:   &account.ID,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	session, err := h.checkoutGateway.InitiateCheckout(c.Request.Context(), txn)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.ledgerService.AttachGatewayReference(
		c.Request.Context(), txn.TransactionID, session.CheckoutRequestID, session.Reference,
	); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.IntentResponse{
		TransactionID: txn.TransactionID,
		Status:        string(txn.Status),
		Amount:        txn.Amount,
		RedirectURL:   session.RedirectURL,
	})
}
