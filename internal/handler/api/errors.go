package api

import (
	"errors"
	"net/http"

	"rental-cart/internal/domain/availability"
	"rental-cart/internal/domain/cart"
	resdto "rental-cart/internal/handler/dto/response"
	"rental-cart/internal/handler/httperr"
	"rental-cart/internal/handler/middleware"
	"rental-cart/internal/pkg/errs"
	"rental-cart/internal/usecase"
	"rental-cart/internal/usecase/shared"
	"rental-cart/internal/usecase/submission"

	"github.com/gin-gonic/gin"
)

var errNoSession = errors.New("cart session missing from context")

// abortWithCartError maps use-case failures onto HTTP statuses.
func abortWithCartError(c *gin.Context, err error) {
	var (
		availErr *shared.AvailabilityError
		valErr   *shared.ValidationError
	)
	switch {
	case errors.As(err, &availErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient availability", resdto.FromShortages(availErr.Shortages))
	case errors.Is(err, errs.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty", nil)
	case errors.As(err, &valErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, valErr.Message, nil)
	case errors.Is(err, errs.ErrNetwork):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Reservation service unavailable", nil)
	case errors.Is(err, errs.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Submission already in progress", nil)
	case errors.Is(err, errs.ErrCartChanged):
		httperr.AbortWithError(c, http.StatusConflict, err, "Cart changed during validation", nil)
	case errors.Is(err, usecase.ErrLineNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart line not found", nil)
	case isBadInput(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func isBadInput(err error) bool {
	for _, target := range []error{
		cart.ErrInvalidQuantity,
		cart.ErrNegativePrice,
		cart.ErrInvalidDate,
		cart.ErrInvalidPeriod,
		availability.ErrInvalidQuery,
		submission.ErrInvalidMode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func sessionID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
	}
	return id, ok
}
