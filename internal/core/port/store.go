package port

import (
	"context"
	"time"

	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
)

// Store is the persistence layer for campaigns and the token balances they
// move. It is an outbound port in hexagonal architecture. Implementations
// must serialize units of work on the same campaign and apply each one
// atomically.
type Store interface {
	// Atomic runs fn in a unit of work scoped to one campaign. Writes made
	// through tx become visible only if fn returns nil; otherwise none of
	// them are applied. fn may be invoked more than once when the backend
	// retries a conflicting transaction, so it must not have side effects
	// outside tx.
	Atomic(ctx context.Context, id domain.CampaignID, fn func(ctx context.Context, tx Tx) error) error

	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id domain.CampaignID) (*domain.Campaign, error)
	// ListActive returns, in id order, up to limit ids of active campaigns
	// greater than after. A non-positive limit means no limit.
	ListActive(ctx context.Context, after domain.CampaignID, limit int) ([]domain.CampaignID, error)
	// Transfers returns the transfers recorded for a campaign, oldest first.
	Transfers(ctx context.Context, id domain.CampaignID) ([]domain.Transfer, error)
	// Balance returns the balance of an account; unknown accounts hold zero.
	Balance(ctx context.Context, account domain.AccountID) (uint64, error)
	// Mint credits an account out of thin air. Used only to fund development
	// environments.
	Mint(ctx context.Context, account domain.AccountID, amount uint64) error
}

// Tx is a unit of work on a single campaign.
type Tx interface {
	// Campaign loads the campaign the unit of work is scoped to, or nil.
	Campaign(ctx context.Context) (*domain.Campaign, error)
	// Insert stores a new campaign. It fails with domain.ErrCampaignExists
	// when the id is taken.
	Insert(ctx context.Context, c domain.Campaign) error
	// Save overwrites the mutable state of an existing campaign.
	Save(ctx context.Context, c domain.Campaign) error
	// Transfer moves t.Amount from t.From to t.To after checking that auth
	// controls t.From, and records t in the audit trail.
	Transfer(ctx context.Context, t domain.Transfer, auth custody.Authority) error
}

// Clock provides the trusted current time.
type Clock interface {
	Now() time.Time
}
