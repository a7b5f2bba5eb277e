package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/balance"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/ledger"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	engine        *balance.Engine
	ledgerService *ledger.Service
	logger        coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(
	engine *balance.Engine,
	ledgerService *ledger.Service,
	logger coreport.Logger,
) *AccountHandler {
	return &AccountHandler{
		engine:        engine,
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// parseAccountID extracts the account ID path parameter
func parseAccountID(c *gin.Context) (uint64, bool) {
	accountID, err := strconv.ParseUint(c.Param("accountId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidInput),
			Message: "Invalid account ID format",
		})
		return 0, false
	}
	return accountID, true
}

// OpenAccount handles the POST /accounts endpoint
func (h *AccountHandler) OpenAccount(c *gin.Context) {
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidInput),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	account, err := h.engine.OpenAccount(c.Request.Context(), req.UserID, entity.AccountType(req.Type))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AccountResponse{
		AccountID: account.ID,
		UserID:    account.UserID,
		Type:      string(account.Type),
		Status:    string(account.Status),
		Version:   account.Version,
	})
}

// GetBalance handles the GET /accounts/:accountId/balance endpoint
func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	account, err := h.engine.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID:              account.ID,
		CurrentBalance:         entity.FormatCents(account.CurrentBalance),
		AvailableBalance:       entity.FormatCents(account.AvailableBalance),
		LockedBalance:          entity.FormatCents(account.LockedBalance),
		EmployeeContributions:  entity.FormatCents(account.EmployeeContributions),
		EmployerContributions:  entity.FormatCents(account.EmployerContributions),
		VoluntaryContributions: entity.FormatCents(account.VoluntaryContributions),
		InterestEarned:         entity.FormatCents(account.InterestEarned),
		TotalWithdrawn:         entity.FormatCents(account.TotalWithdrawn),
		Version:                account.Version,
	})
}

// ListTransactions handles the GET /accounts/:accountId/transactions endpoint
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrInvalidInput),
				Message: "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	if _, err := h.engine.GetAccount(c.Request.Context(), accountID); err != nil {
		respondError(c, err)
		return
	}

	transactions, err := h.ledgerService.ListByAccount(c.Request.Context(), accountID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		item := dto.TransactionResponse{
			TransactionID: txn.TransactionID,
			Kind:          string(txn.Kind),
			Status:        string(txn.Status),
			Amount:        txn.Amount,
			Description:   txn.Description,
			CreatedAt:     txn.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if txn.ProcessedAt != nil {
			item.ProcessedAt = txn.ProcessedAt.Format("2006-01-02T15:04:05Z07:00")
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}
