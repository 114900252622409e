package repository

import (
	"context"

	"classpay/internal/domain/listing"
	"classpay/internal/infra"
	"classpay/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingRepository is a read-only lookup; listing CRUD belongs to the
// marketplace side of the product, not this core.
type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

func (r *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	const query = `SELECT id, title, price_per_person_cents FROM listings WHERE id = $1`

	var l listing.Listing
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Title, &l.PricePerPersonCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}

	return &l, nil
}
