package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to an HTTP status and writes the
// standardized error body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errs.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case errs.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case errs.IsAuthenticationError(err):
		status = http.StatusUnauthorized
		message = "Unauthorized"
	case errs.IsInsufficientFundsError(err):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errs.IsConflictError(err):
		status = http.StatusConflict
		message = err.Error()
	case errs.IsConcurrencyError(err):
		status = http.StatusServiceUnavailable
		message = "Account is busy, retry shortly"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}
