package domain

import "time"

// ViewsPerRateUnit is the number of effective views one CPM unit pays for.
const ViewsPerRateUnit = 1000

// CampaignTerms are the immutable parameters a brand submits on creation.
type CampaignTerms struct {
	ID         CampaignID
	CPM        uint64 // payout per 1,000 effective views
	LikeWeight uint64 // views credited per like
	MaxBudget  uint64
	Creator    Identity
	StartTime  time.Time
	EndTime    time.Time
}

// Validate checks the terms in the order the errors are documented.
func (t CampaignTerms) Validate() error {
	if t.CPM == 0 {
		return ErrInvalidCPM
	}
	if t.MaxBudget == 0 {
		return ErrInvalidBudget
	}
	if !t.EndTime.After(t.StartTime) {
		return ErrInvalidTimeRange
	}
	if t.LikeWeight == 0 {
		return ErrInvalidLikeWeight
	}
	if id, err := ParseCampaignID(string(t.ID)); err != nil || id != t.ID {
		return ErrInvalidCampaignID
	}
	if _, err := t.Creator.PublicKey(); err != nil {
		return err
	}
	return nil
}

// Campaign is the escrow record of one brand/creator engagement. Transition
// methods take the record by value and return the next state, so a failed
// transition never leaves a partially mutated record behind.
type Campaign struct {
	ID         CampaignID
	Brand      Identity
	Creator    Identity
	CPM        uint64
	LikeWeight uint64
	MaxBudget  uint64
	StartTime  time.Time
	EndTime    time.Time

	EscrowBalance uint64
	Views         uint64
	Likes         uint64
	IsActive      bool
	TotalPaid     uint64
	TotalRefunded uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settlement describes the outcome of one payout computation.
type Settlement struct {
	EffectiveViews uint64
	TotalDue       uint64
	Payout         uint64
	Deactivated    bool
}

// NewCampaign builds the initial record for terms funded by brand. The caller
// is responsible for moving MaxBudget into escrow in the same unit of work.
func NewCampaign(brand Identity, t CampaignTerms, now time.Time) (Campaign, error) {
	// Stored times keep microsecond precision, the finest PostgreSQL holds.
	t.StartTime = t.StartTime.UTC().Truncate(time.Microsecond)
	t.EndTime = t.EndTime.UTC().Truncate(time.Microsecond)
	if err := t.Validate(); err != nil {
		return Campaign{}, err
	}
	if _, err := brand.PublicKey(); err != nil {
		return Campaign{}, err
	}
	now = now.UTC().Truncate(time.Microsecond)
	return Campaign{
		ID:            t.ID,
		Brand:         brand,
		Creator:       t.Creator,
		CPM:           t.CPM,
		LikeWeight:    t.LikeWeight,
		MaxBudget:     t.MaxBudget,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		EscrowBalance: t.MaxBudget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Accept activates a funded, inactive campaign.
func (c Campaign) Accept(now time.Time) (Campaign, error) {
	if c.IsActive {
		return c, ErrCampaignAlreadyActive
	}
	if c.EscrowBalance == 0 {
		return c, ErrNoFundsInEscrow
	}
	c.IsActive = true
	c.UpdatedAt = now.UTC()
	return c, nil
}

// UpdateMetrics replaces the cumulative counters. Neither may go backwards.
func (c Campaign) UpdateMetrics(views, likes uint64, now time.Time) (Campaign, error) {
	if !c.IsActive {
		return c, ErrCampaignNotActive
	}
	if views < c.Views {
		return c, ErrMetricsCannotDecrease
	}
	if likes < c.Likes {
		return c, ErrMetricsCannotDecrease
	}
	c.Views = views
	c.Likes = likes
	c.UpdatedAt = now.UTC()
	return c, nil
}

// EffectiveViews is views + likes*like_weight.
func (c Campaign) EffectiveViews() (uint64, error) {
	weighted, err := CheckedMul(c.Likes, c.LikeWeight)
	if err != nil {
		return 0, err
	}
	return CheckedAdd(c.Views, weighted)
}

// TotalDue is the amount earned by the current metrics, ignoring escrow.
func (c Campaign) TotalDue() (uint64, error) {
	effective, err := c.EffectiveViews()
	if err != nil {
		return 0, err
	}
	return CheckedMul(effective/ViewsPerRateUnit, c.CPM)
}

// PendingPayout is what a settlement would release right now.
func (c Campaign) PendingPayout() (uint64, error) {
	due, err := c.TotalDue()
	if err != nil {
		return 0, err
	}
	return min(SaturatingSub(due, c.TotalPaid), c.EscrowBalance), nil
}

// Settle computes the payout owed from cumulative metrics and returns the
// record as it stands after that payout leaves escrow. A zero payout returns
// the record unchanged and is not an error.
func (c Campaign) Settle(now time.Time) (Campaign, Settlement, error) {
	if !c.IsActive {
		return c, Settlement{}, ErrCampaignNotActive
	}
	effective, err := c.EffectiveViews()
	if err != nil {
		return c, Settlement{}, err
	}
	due, err := CheckedMul(effective/ViewsPerRateUnit, c.CPM)
	if err != nil {
		return c, Settlement{}, err
	}
	s := Settlement{
		EffectiveViews: effective,
		TotalDue:       due,
		Payout:         min(SaturatingSub(due, c.TotalPaid), c.EscrowBalance),
	}
	if s.Payout == 0 {
		return c, s, nil
	}

	next := c
	next.EscrowBalance = SaturatingSub(c.EscrowBalance, s.Payout)
	if next.TotalPaid, err = CheckedAdd(c.TotalPaid, s.Payout); err != nil {
		return c, Settlement{}, err
	}
	if next.EscrowBalance == 0 || now.After(c.EndTime) {
		next.IsActive = false
		s.Deactivated = true
	}
	next.UpdatedAt = now.UTC()
	if err = next.CheckInvariants(); err != nil {
		return c, Settlement{}, err
	}
	return next, s, nil
}

// Close empties escrow back to the brand and deactivates the campaign. It
// returns the refunded amount, which may be zero.
func (c Campaign) Close(now time.Time) (Campaign, uint64, error) {
	refund := c.EscrowBalance
	next := c
	if refund > 0 {
		var err error
		if next.TotalRefunded, err = CheckedAdd(c.TotalRefunded, refund); err != nil {
			return c, 0, err
		}
		next.EscrowBalance = 0
	}
	next.IsActive = false
	next.UpdatedAt = now.UTC()
	if err := next.CheckInvariants(); err != nil {
		return c, 0, err
	}
	return next, refund, nil
}

// CheckInvariants verifies escrow + paid + refunded == max_budget. It does not
// look at metrics, so a record whose counters overflow the payout formula can
// still be closed.
func (c Campaign) CheckInvariants() error {
	sum, err := CheckedAdd(c.EscrowBalance, c.TotalPaid)
	if err != nil {
		return ErrInvariantViolation
	}
	if sum, err = CheckedAdd(sum, c.TotalRefunded); err != nil || sum != c.MaxBudget {
		return ErrInvariantViolation
	}
	return nil
}
