package port

import (
	"context"

	"reachpay/internal/core/domain"
)

// SettlementUseCase defines the escrow operations exposed by the engine. This
// interface is the primary port into the application domain. Caller identities
// passed in are expected to be authenticated by the inbound adapter.
type SettlementUseCase interface {
	// CreateCampaign validates the terms, records the campaign and moves
	// MaxBudget from the brand's account into the campaign escrow. Either
	// both happen or neither does.
	CreateCampaign(ctx context.Context, brand domain.Identity, terms domain.CampaignTerms) (*domain.Campaign, error)

	// AcceptCampaign activates the campaign on behalf of its creator.
	AcceptCampaign(ctx context.Context, caller domain.Identity, id domain.CampaignID) (*domain.Campaign, error)

	// UpdateMetrics replaces the cumulative views and likes. Only the oracle
	// may call it and neither counter may decrease.
	UpdateMetrics(ctx context.Context, caller domain.Identity, id domain.CampaignID, views, likes uint64) (*domain.Campaign, error)

	// SettlePayout releases whatever the current metrics earn beyond what was
	// already paid, capped by escrow. Anyone may trigger it; funds only ever
	// go to the campaign's creator.
	SettlePayout(ctx context.Context, id domain.CampaignID) (*SettleResult, error)

	// CloseCampaign refunds the remaining escrow to the brand and deactivates
	// the campaign.
	CloseCampaign(ctx context.Context, caller domain.Identity, id domain.CampaignID) (*CloseResult, error)

	// CampaignStatus returns the record with its derived payout figures.
	CampaignStatus(ctx context.Context, id domain.CampaignID) (*CampaignStatus, error)

	// Transfers returns the audit trail of value moved for a campaign.
	Transfers(ctx context.Context, id domain.CampaignID) ([]domain.Transfer, error)

	// Balance returns the ledger balance of an account.
	Balance(ctx context.Context, account domain.AccountID) (uint64, error)

	// ActiveCampaigns pages through active campaign ids in id order, starting
	// after the given id.
	ActiveCampaigns(ctx context.Context, after domain.CampaignID, limit int) ([]domain.CampaignID, error)
}

// SettleResult is the outcome of a settlement. Settlement.Payout is zero when
// nothing was due.
type SettleResult struct {
	Campaign   domain.Campaign
	Settlement domain.Settlement
}

// CloseResult is the outcome of closing a campaign.
type CloseResult struct {
	Campaign domain.Campaign
	Refunded uint64
}

// CampaignStatus is a read-only view of a campaign and what it currently owes.
type CampaignStatus struct {
	Campaign       domain.Campaign
	EscrowAccount  domain.AccountID
	EffectiveViews uint64
	TotalDue       uint64
	PendingPayout  uint64
}
