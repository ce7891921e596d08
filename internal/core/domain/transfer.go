package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferKind labels why value moved.
type TransferKind string

const (
	TransferDeposit TransferKind = "deposit" // brand -> escrow on create
	TransferPayout  TransferKind = "payout"  // escrow -> creator on settle
	TransferRefund  TransferKind = "refund"  // escrow -> brand on close
)

// Transfer is one movement of value between ledger accounts, kept for audit.
type Transfer struct {
	ID         uuid.UUID
	CampaignID CampaignID
	Kind       TransferKind
	From       AccountID
	To         AccountID
	Amount     uint64
	CreatedAt  time.Time
}

// NewTransfer stamps a transfer with a fresh id.
func NewTransfer(campaign CampaignID, kind TransferKind, from, to AccountID, amount uint64, now time.Time) (Transfer, error) {
	if amount == 0 || from == "" || to == "" || from == to {
		return Transfer{}, ErrInvalidTransfer
	}
	return Transfer{
		ID:         uuid.New(),
		CampaignID: campaign,
		Kind:       kind,
		From:       from,
		To:         to,
		Amount:     amount,
		CreatedAt:  now.UTC(),
	}, nil
}
