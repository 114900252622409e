package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Status is the lifecycle state of a booking. Payment events only ever move a
// booking forward: approved upgrades to approved_paid so "approved then paid"
// stays distinguishable from a direct payment, every other state lands on paid,
// and a booking that is already in a paid variant stays where it is.
type Status string

const (
	StatusPending      Status = "pending"
	StatusApproved     Status = "approved"
	StatusApprovedPaid Status = "approved_paid"
	StatusPaid         Status = "paid"
	StatusDeclined     Status = "declined"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusApprovedPaid, StatusPaid, StatusDeclined:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

// IsPaid reports whether the booking has already been paid in either variant.
func (s Status) IsPaid() bool {
	return s == StatusPaid || s == StatusApprovedPaid
}

// NextOnPaymentSuccess computes the status a payment-success event transitions
// to from the current status. Paid variants map to themselves so applying the
// transition twice is a no-op.
func (s Status) NextOnPaymentSuccess() Status {
	switch s {
	case StatusApproved:
		return StatusApprovedPaid
	case StatusApprovedPaid, StatusPaid:
		return s
	default:
		return StatusPaid
	}
}
