package listing

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidPrice = errors.New("listing price must be positive")

// Listing is the read-only collaborator view this core needs: enough to price
// a checkout. Listing CRUD lives elsewhere.
type Listing struct {
	ID                  uuid.UUID
	Title               string
	PricePerPersonCents int64
}

// UnitPriceCents returns the per-attendee charge. A missing or zero price is
// refused rather than silently charging nothing.
func (l *Listing) UnitPriceCents() (int64, error) {
	if l.PricePerPersonCents <= 0 {
		return 0, ErrInvalidPrice
	}
	return l.PricePerPersonCents, nil
}
