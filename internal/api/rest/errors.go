package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-nft-issuer/internal/api/shared/errors"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondInternalError logs err and responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps a minter error onto its HTTP status
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrNonexistentToken):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, err.Error()))

	case errors.Is(err, domain.ErrAlreadyInitialized),
		errors.Is(err, domain.ErrNotInitialized),
		errors.Is(err, domain.ErrSupplyCapReached),
		errors.Is(err, domain.ErrTokenAlreadyExists):
		c.JSON(http.StatusConflict, apierrors.NewConflictError(message, err.Error()))

	case errors.Is(err, domain.ErrInvalidReceiver),
		errors.Is(err, domain.ErrInvalidOwner),
		errors.Is(err, domain.ErrInvalidOperator),
		errors.Is(err, domain.ErrInvalidCaller),
		errors.Is(err, domain.ErrInvalidTokenURI):
		respondBadRequest(c, message, err.Error())

	case errors.Is(err, domain.ErrInsufficientApproval),
		errors.Is(err, domain.ErrIncorrectOwner),
		errors.Is(err, domain.ErrInvalidApprover):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(message, err.Error()))

	default:
		respondInternalError(c, err, message)
	}
}
