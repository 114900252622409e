package stripegw

import (
	"encoding/json"
	"strings"

	"classpay/internal/pkg/config"
	"classpay/internal/pkg/errs"
	"classpay/internal/usecase/commands"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Verifier authenticates webhook deliveries against the shared endpoint
// secret and decodes them into the closed set of kinds the pipeline handles.
// Verification needs the exact raw body bytes; any re-serialization upstream
// invalidates the signature.
type Verifier struct {
	secret string
}

func NewVerifier(cfg config.Config) *Verifier {
	return &Verifier{secret: cfg.Stripe.WebhookSecret}
}

func (v *Verifier) VerifyAndDecode(payload []byte, signatureHeader string) (commands.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.secret)
	if err != nil {
		return commands.PaymentEvent{}, errs.Mark(err, commands.ErrSignatureInvalid)
	}

	out := commands.PaymentEvent{
		ID:      event.ID,
		RawKind: string(event.Type),
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return commands.PaymentEvent{}, errs.Mark(err, commands.ErrEventMalformed)
		}
		out.Kind = commands.KindCheckoutCompleted
		out.BookingID = strings.TrimSpace(sess.Metadata["booking_id"])
		out.SessionID = sess.ID
		if sess.PaymentIntent != nil {
			out.PaymentIntentID = sess.PaymentIntent.ID
		}

	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return commands.PaymentEvent{}, errs.Mark(err, commands.ErrEventMalformed)
		}
		out.Kind = commands.KindPaymentSucceeded
		out.BookingID = strings.TrimSpace(intent.Metadata["booking_id"])
		out.PaymentIntentID = intent.ID

	default:
		out.Kind = commands.KindUnknown
	}

	return out, nil
}
