package request

import "github.com/google/uuid"

// StartCheckoutRequest accepts either an existing booking or a listing to pay
// for directly. num_attendees is only meaningful on the listing path; the
// booking path uses the attendee count stored on the booking.
type StartCheckoutRequest struct {
	BookingID    *uuid.UUID `json:"booking_id"`
	ListingID    *uuid.UUID `json:"listing_id"`
	NumAttendees int32      `json:"num_attendees" binding:"omitempty,min=1"`
	SuccessURL   *string    `json:"success_url" binding:"omitempty,url"`
	CancelURL    *string    `json:"cancel_url" binding:"omitempty,url"`
}
