package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/callback"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/dto"
)

// SignatureHeader carries the gateway's shared-secret signature.
const SignatureHeader = "X-Gateway-Signature"

// CallbackHandler handles asynchronous settlement notifications from the
// payment gateway.
type CallbackHandler struct {
	processor *callback.Processor
	logger    coreport.Logger
}

// NewCallbackHandler creates a new callback handler instance
func NewCallbackHandler(processor *callback.Processor, logger coreport.Logger) *CallbackHandler {
	return &CallbackHandler{
		processor: processor,
		logger:    logger,
	}
}

// HandleCallback handles the POST /gateway/callback endpoint
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidInput),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.processor.Process(c.Request.Context(), callback.Notification{
		CheckoutRequestID: req.CheckoutRequestID,
		Reference:         req.Reference,
		Status:            req.Status,
		Signature:         c.GetHeader(SignatureHeader),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CallbackResponse{
		TransactionID: result.TransactionID,
		Status:        string(result.Status),
		Duplicate:     result.Duplicate,
	})
}
