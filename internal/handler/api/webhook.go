package api

import (
	"errors"
	"log/slog"
	"net/http"

	"classpay/internal/handler/httperr"
	"classpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	verifier        commands.SignatureVerifier
	webhookCommands commands.WebhookCommands
}

func NewWebhookHandler(verifier commands.SignatureVerifier, webhookCommands commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{
		verifier:        verifier,
		webhookCommands: webhookCommands,
	}
}

// HandleStripeWebhook is the ingestion endpoint. It has no user credential;
// the body signature is the sole authentication. 200 means "handled or safely
// ignored", 400 means "do not retry", 500 means "retry" — returning success on
// a real failure would silently lose the payment, so ambiguous failures stay
// on the retry path.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	// The exact raw bytes are required; re-serializing the body would break
	// the signature.
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	event, err := h.verifier.VerifyAndDecode(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, commands.ErrSignatureInvalid) {
			slog.Warn("webhook signature verification failed",
				"client_ip", c.ClientIP(), "error", err.Error())
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed event", nil)
		return
	}

	result, err := h.webhookCommands.ProcessEvent(c.Request.Context(), event)
	if err != nil {
		slog.Error("webhook event processing failed",
			"event_id", event.ID, "kind", event.RawKind, "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Processing failed", nil)
		return
	}

	switch {
	case result.Duplicate:
		c.JSON(http.StatusOK, gin.H{"ok": true, "idempotent": true})
	case result.Ignored:
		c.JSON(http.StatusOK, gin.H{"ok": true, "note": result.Note})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true, "status": result.Status.String()})
	}
}
