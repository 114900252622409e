//go:build unit || e2e

package stripetest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// SignPayload produces a Stripe-Signature header value for the given raw body,
// matching the v1 scheme the webhook library verifies: an HMAC-SHA256 over
// "<timestamp>.<payload>" keyed with the endpoint secret.
func SignPayload(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)

	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}
