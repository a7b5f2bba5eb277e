package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	gatewayport "github.com/danielmaina/pension-ledger/internal/domain/port/gateway"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/ledger"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/dto"
)

// RegistrationHandler handles paid registration requests. The user record is
// deferred: only a pending registration transaction is created here, carrying
// the hashed credential in metadata until the gateway confirms payment.
type RegistrationHandler struct {
	ledgerService   *ledger.Service
	checkoutGateway gatewayport.CheckoutGateway
	logger          coreport.Logger
}

// NewRegistrationHandler creates a new registration handler instance
func NewRegistrationHandler(
	ledgerService *ledger.Service,
	checkoutGateway gatewayport.CheckoutGateway,
	logger coreport.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		ledgerService:   ledgerService,
		checkoutGateway: checkoutGateway,
		logger:          logger,
	}
}

// Register handles the POST /register endpoint
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidInput),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	// The plaintext credential never leaves this handler.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("Failed to hash credential", map[string]any{"error": err.Error()})
		respondError(c, errs.ErrInternalServer)
		return
	}

	txn, err := h.ledgerService.CreatePending(c.Request.Context(), ledger.CreatePendingInput{
		Kind:        string(entity.KindRegistration),
		Amount:      req.Amount,
		Description: "Registration fee",
		Metadata: map[string]string{
			entity.MetaEmail:          req.Email,
			entity.MetaHashedPassword: string(hashed),
			entity.MetaFirstName:      req.FirstName,
			entity.MetaLastName:       req.LastName,
			entity.MetaPhone:          req.Phone,
		},
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

	c.JSON(http.StatusAccepted, dto.RegistrationResponse{
		TransactionID: txn.TransactionID,
		Status:        string(txn.Status),
		RedirectURL:   session.RedirectURL,
	})
}
