package repository

import (
	"context"

	"classpay/internal/infra"
	"classpay/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Profile carries the Stripe Connect onboarding state for a host.
type Profile struct {
	ID              uuid.UUID
	Email           *string
	StripeAccountID *string
	IsHost          bool
}

type OnboardingFlags struct {
	Onboarded      bool
	ChargesEnabled bool
	PayoutsEnabled bool
}

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	const query = `SELECT id, email, stripe_account_id, is_host FROM profiles WHERE id = $1`

	var (
		p         Profile
		email     pgtype.Text
		accountID pgtype.Text
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &email, &accountID, &p.IsHost)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}

	p.Email = pgconv.StringPtrFromPgtype(email)
	p.StripeAccountID = pgconv.StringPtrFromPgtype(accountID)

	return &p, nil
}

func (r *ProfileRepository) SetStripeAccountID(ctx context.Context, id uuid.UUID, accountID string) error {
	const query = `UPDATE profiles SET stripe_account_id = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, accountID)
	if err != nil {
		return infra.WrapRepoErr("failed to save stripe account id", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}

	return nil
}

// UpdateOnboardingFlags persists the capability flags reported by Stripe and
// promotes the profile to host once details are submitted.
func (r *ProfileRepository) UpdateOnboardingFlags(ctx context.Context, id uuid.UUID, flags OnboardingFlags) error {
	const query = `
		UPDATE profiles
		SET stripe_onboarded = $2,
		    stripe_charges_enabled = $3,
		    stripe_payouts_enabled = $4,
		    is_host = is_host OR $2
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, flags.Onboarded, flags.ChargesEnabled, flags.PayoutsEnabled)
	if err != nil {
		return infra.WrapRepoErr("failed to update onboarding flags", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}

	return nil
}
