package api

import (
	"errors"
	"net/http"

	reqdto "classpay/internal/handler/dto/request"
	resdto "classpay/internal/handler/dto/response"
	"classpay/internal/handler/httperr"
	"classpay/internal/handler/middleware"
	"classpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// StartCheckout opens a payment session for an existing booking or a direct
// listing purchase and returns the redirect URL. Processor secrets never
// appear in the response.
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	var req reqdto.StartCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	// Identity is optional here: paying for an existing booking works from a
	// signed checkout link, the listing-only path is rejected downstream.
	userID, _ := middleware.GetUserID(c)

	params := commands.CheckoutParams{
		BookingID:    req.BookingID,
		ListingID:    req.ListingID,
		NumAttendees: req.NumAttendees,
		SuccessURL:   req.SuccessURL,
		CancelURL:    req.CancelURL,
	}

	result, err := h.checkoutCommands.StartCheckout(c.Request.Context(), params, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingReference):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Provide booking_id or listing_id", nil)
		case errors.Is(err, commands.ErrNotAuthenticated):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Not authenticated", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		case errors.Is(err, commands.ErrInvalidPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price for listing", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
