package api

import (
	"errors"
	"net/http"

	resdto "classpay/internal/handler/dto/response"
	"classpay/internal/handler/httperr"
	"classpay/internal/handler/middleware"
	"classpay/internal/pkg/errs"
	"classpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingCommands commands.OnboardingCommands
}

func NewOnboardingHandler(onboardingCommands commands.OnboardingCommands) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingCommands: onboardingCommands,
	}
}

func (h *OnboardingHandler) StartOnboarding(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		// Route sits behind RequireAuth; a missing identity is a wiring fault.
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	result, err := h.onboardingCommands.StartOnboarding(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OnboardingLinkResponse{URL: result.URL})
}

func (h *OnboardingHandler) FinalizeOnboarding(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	result, err := h.onboardingCommands.FinalizeOnboarding(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		case errors.Is(err, commands.ErrNoStripeAccount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No stripe account on profile", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOnboardingStatus(result))
}
