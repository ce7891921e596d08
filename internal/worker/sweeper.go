package worker

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"reachpay/internal/config/configs"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
)

// Sweeper periodically settles every active campaign. It is an ordinary
// client of the settlement use case: each campaign is settled in its own
// operation, and a failing campaign is logged and skipped.
type Sweeper struct {
	svc      port.SettlementUseCase
	interval time.Duration
	batch    int
	logger   *slog.Logger
}

// NewSweeper returns a sweeper configured by cfg.
func NewSweeper(svc port.SettlementUseCase, cfg configs.Sweeper, logger *slog.Logger) *Sweeper {
	batch := cfg.Batch
	if batch <= 0 {
		batch = 100
	}
	return &Sweeper{
		svc:      svc,
		interval: cfg.Interval,
		batch:    batch,
		logger:   logger.With(slog.String("module", "sweeper")),
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweepAndLog(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepAndLog(ctx)
		}
	}
}

func (s *Sweeper) sweepAndLog(ctx context.Context) {
	res, err := s.Sweep(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("sweep failed", slog.Any("error", err))
		return
	}
	if res.Paid > 0 || res.Failed > 0 {
		s.logger.Info("sweep finished",
			slog.Int("checked", res.Checked),
			slog.Int("paid", res.Paid),
			slog.Uint64("amount", res.Amount),
			slog.Int("failed", res.Failed),
		)
	}
}

// SweepResult summarises one pass over the active campaigns.
type SweepResult struct {
	Checked int
	Paid    int
	// Amount saturates at math.MaxUint64.
	Amount uint64
	Failed int
}

// Sweep settles all campaigns that are active when it reaches them. It only
// returns an error when the campaigns cannot be listed or ctx is done.
func (s *Sweeper) Sweep(ctx context.Context) (SweepResult, error) {
	var (
		res   SweepResult
		after domain.CampaignID
	)
	for {
		ids, err := s.svc.ActiveCampaigns(ctx, after, s.batch)
		if err != nil {
			return res, err
		}
		for _, id := range ids {
			if err = ctx.Err(); err != nil {
				return res, err
			}
			res.Checked++
			out, err := s.svc.SettlePayout(ctx, id)
			switch {
			case errors.Is(err, domain.ErrCampaignNotActive):
				// deactivated or closed since it was listed
			case err != nil:
				res.Failed++
				s.logger.Warn("settlement failed",
					slog.String("campaign_id", string(id)),
					slog.String("code", domain.CodeOf(err)),
					slog.Any("error", err),
				)
			case out.Settlement.Payout > 0:
				res.Paid++
				if res.Amount, err = domain.CheckedAdd(res.Amount, out.Settlement.Payout); err != nil {
					res.Amount = math.MaxUint64
					s.logger.Warn("sweep total saturated", slog.String("campaign_id", string(id)))
				}
			}
		}
		if len(ids) < s.batch {
			return res, nil
		}
		after = ids[len(ids)-1]
	}
}
