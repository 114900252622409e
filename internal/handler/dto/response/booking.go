package response

import (
	"time"

	"classpay/internal/usecase/queries"
)

type PaymentStatusResponse struct {
	BookingID        string     `json:"booking_id"`
	ListingID        string     `json:"listing_id"`
	Status           string     `json:"status"`
	Paid             bool       `json:"paid"`
	TotalAmountCents int64      `json:"total_amount_cents"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
}

func FromPaymentStatusView(view *queries.PaymentStatusView) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		BookingID:        view.BookingID.String(),
		ListingID:        view.ListingID.String(),
		Status:           view.Status.String(),
		Paid:             view.Status.IsPaid(),
		TotalAmountCents: view.TotalAmountCents,
		PaidAt:           view.PaidAt,
	}
}
