package response

import "classpay/internal/usecase/commands"

type StartCheckoutResponse struct {
	BookingID string `json:"booking_id"`
	URL       string `json:"url"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *StartCheckoutResponse {
	return &StartCheckoutResponse{
		BookingID: result.BookingID.String(),
		URL:       result.URL,
	}
}
