package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
)

// SettlementUseCase runs the campaign escrow state machine. Each operation is
// a single unit of work on the store: it loads the campaign, authorizes the
// caller, computes the next state and commits it together with any transfer,
// or fails without changing anything.
type SettlementUseCase struct {
	store     port.Store
	custodian *custody.Custodian
	guard     domain.Guard
	clock     port.Clock
	logger    *slog.Logger
	tracer    trace.Tracer
}

var _ port.SettlementUseCase = (*SettlementUseCase)(nil)

// NewSettlementUseCase wires the use case. The custodian must be the one the
// store verifies escrow capabilities with.
func NewSettlementUseCase(store port.Store, custodian *custody.Custodian, guard domain.Guard, clock port.Clock, logger *slog.Logger) *SettlementUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettlementUseCase{
		store:     store,
		custodian: custodian,
		guard:     guard,
		clock:     clock,
		logger:    logger.With(slog.String("module", "settlement")),
		tracer:    otel.Tracer("reachpay/usecase"),
	}
}

func (u *SettlementUseCase) startSpan(ctx context.Context, name string, id domain.CampaignID) (context.Context, trace.Span) {
	return u.tracer.Start(ctx, "SettlementUseCase."+name,
		trace.WithAttributes(attribute.String("campaign.id", string(id))))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, domain.CodeOf(err))
	}
	span.End()
}

// CreateCampaign implements port.SettlementUseCase.
func (u *SettlementUseCase) CreateCampaign(ctx context.Context, brand domain.Identity, terms domain.CampaignTerms) (_ *domain.Campaign, err error) {
	ctx, span := u.startSpan(ctx, "CreateCampaign", terms.ID)
	defer func() { endSpan(span, err) }()

	now := u.clock.Now()
	campaign, err := domain.NewCampaign(brand, terms, now)
	if err != nil {
		return nil, err
	}
	escrow := custody.EscrowAccount(campaign.ID)
	err = u.store.Atomic(ctx, campaign.ID, func(ctx context.Context, tx port.Tx) error {
		if err := tx.Insert(ctx, campaign); err != nil {
			return err
		}
		deposit, err := domain.NewTransfer(campaign.ID, domain.TransferDeposit, brand.Account(), escrow, campaign.MaxBudget, now)
		if err != nil {
			return err
		}
		return tx.Transfer(ctx, deposit, custody.Signer(brand))
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("campaign created",
		slog.String("event", "campaign_created"),
		slog.String("campaign_id", string(campaign.ID)),
		slog.String("brand", string(campaign.Brand)),
		slog.String("creator", string(campaign.Creator)),
		slog.Uint64("cpm", campaign.CPM),
		slog.Uint64("like_weight", campaign.LikeWeight),
		slog.Uint64("max_budget", campaign.MaxBudget),
		slog.String("escrow_account", string(escrow)),
	)
	return &campaign, nil
}

// AcceptCampaign implements port.SettlementUseCase.
func (u *SettlementUseCase) AcceptCampaign(ctx context.Context, caller domain.Identity, id domain.CampaignID) (_ *domain.Campaign, err error) {
	ctx, span := u.startSpan(ctx, "AcceptCampaign", id)
	defer func() { endSpan(span, err) }()

	now := u.clock.Now()
	var accepted domain.Campaign
	err = u.store.Atomic(ctx, id, func(ctx context.Context, tx port.Tx) error {
		c, err := loadCampaign(ctx, tx)
		if err != nil {
			return err
		}
		if err = u.guard.RequireCreator(caller, c); err != nil {
			return err
		}
		if accepted, err = c.Accept(now); err != nil {
			return err
		}
		return tx.Save(ctx, accepted)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("campaign accepted by creator",
		slog.String("event", "campaign_accepted"),
		slog.String("campaign_id", string(id)),
		slog.String("creator", string(caller)),
		slog.Uint64("escrow_balance", accepted.EscrowBalance),
	)
	return &accepted, nil
}

// UpdateMetrics implements port.SettlementUseCase.
func (u *SettlementUseCase) UpdateMetrics(ctx context.Context, caller domain.Identity, id domain.CampaignID, views, likes uint64) (_ *domain.Campaign, err error) {
	ctx, span := u.startSpan(ctx, "UpdateMetrics", id)
	defer func() { endSpan(span, err) }()

	if err = u.guard.RequireOracle(caller); err != nil {
		return nil, err
	}
	now := u.clock.Now()
	var updated domain.Campaign
	err = u.store.Atomic(ctx, id, func(ctx context.Context, tx port.Tx) error {
		c, err := loadCampaign(ctx, tx)
		if err != nil {
			return err
		}
		if updated, err = c.UpdateMetrics(views, likes, now); err != nil {
			return err
		}
		return tx.Save(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("metrics updated",
		slog.String("event", "metrics_updated"),
		slog.String("campaign_id", string(id)),
		slog.Uint64("views", updated.Views),
		slog.Uint64("likes", updated.Likes),
	)
	return &updated, nil
}

// SettlePayout implements port.SettlementUseCase.
func (u *SettlementUseCase) SettlePayout(ctx context.Context, id domain.CampaignID) (_ *port.SettleResult, err error) {
	ctx, span := u.startSpan(ctx, "SettlePayout", id)
	defer func() { endSpan(span, err) }()

	now := u.clock.Now()
	var res port.SettleResult
	err = u.store.Atomic(ctx, id, func(ctx context.Context, tx port.Tx) error {
		c, err := loadCampaign(ctx, tx)
		if err != nil {
			return err
		}
		next, s, err := c.Settle(now)
		if err != nil {
			return err
		}
		res = port.SettleResult{Campaign: next, Settlement: s}
		if s.Payout == 0 {
			return nil
		}
		payout, err := domain.NewTransfer(c.ID, domain.TransferPayout, custody.EscrowAccount(c.ID), c.Creator.Account(), s.Payout, now)
		if err != nil {
			return err
		}
		if err = tx.Transfer(ctx, payout, custody.Escrow(u.custodian.Capability(c.ID))); err != nil {
			return err
		}
		return tx.Save(ctx, next)
	})
	if err != nil {
		return nil, err
	}

	s, c := res.Settlement, res.Campaign
	span.SetAttributes(attribute.String("settlement.payout", strconv.FormatUint(s.Payout, 10)))
	if s.Payout == 0 {
		u.logger.Info("no payout due",
			slog.String("event", "payout_skipped"),
			slog.String("campaign_id", string(id)),
			slog.Uint64("effective_views", s.EffectiveViews),
			slog.Uint64("total_paid", c.TotalPaid),
		)
		return &res, nil
	}
	u.logger.Info("payout settled",
		slog.String("event", "payout_settled"),
		slog.String("campaign_id", string(id)),
		slog.String("creator", string(c.Creator)),
		slog.Uint64("amount", s.Payout),
		slog.Uint64("effective_views", s.EffectiveViews),
		slog.Uint64("total_due", s.TotalDue),
		slog.Uint64("total_paid", c.TotalPaid),
		slog.Uint64("escrow_balance", c.EscrowBalance),
	)
	if s.Deactivated {
		u.logger.Info("campaign deactivated",
			slog.String("event", "campaign_deactivated"),
			slog.String("campaign_id", string(id)),
			slog.Bool("escrow_exhausted", c.EscrowBalance == 0),
			slog.Bool("window_expired", now.After(c.EndTime)),
		)
	}
	return &res, nil
}

// CloseCampaign implements port.SettlementUseCase.
func (u *SettlementUseCase) CloseCampaign(ctx context.Context, caller domain.Identity, id domain.CampaignID) (_ *port.CloseResult, err error) {
	ctx, span := u.startSpan(ctx, "CloseCampaign", id)
	defer func() { endSpan(span, err) }()

	now := u.clock.Now()
	var res port.CloseResult
	err = u.store.Atomic(ctx, id, func(ctx context.Context, tx port.Tx) error {
		c, err := loadCampaign(ctx, tx)
		if err != nil {
			return err
		}
		if err = u.guard.RequireBrand(caller, c); err != nil {
			return err
		}
		next, refund, err := c.Close(now)
		if err != nil {
			return err
		}
		res = port.CloseResult{Campaign: next, Refunded: refund}
		if refund > 0 {
			t, err := domain.NewTransfer(c.ID, domain.TransferRefund, custody.EscrowAccount(c.ID), c.Brand.Account(), refund, now)
			if err != nil {
				return err
			}
			if err = tx.Transfer(ctx, t, custody.Escrow(u.custodian.Capability(c.ID))); err != nil {
				return err
			}
		}
		return tx.Save(ctx, next)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("campaign closed",
		slog.String("event", "campaign_closed"),
		slog.String("campaign_id", string(id)),
		slog.String("brand", string(caller)),
		slog.Uint64("refunded", res.Refunded),
		slog.Uint64("total_paid", res.Campaign.TotalPaid),
		slog.Uint64("total_refunded", res.Campaign.TotalRefunded),
	)
	return &res, nil
}

// CampaignStatus implements port.SettlementUseCase.
func (u *SettlementUseCase) CampaignStatus(ctx context.Context, id domain.CampaignID) (*port.CampaignStatus, error) {
	c, err := u.store.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	effective, err := c.EffectiveViews()
	if err != nil {
		return nil, err
	}
	due, err := c.TotalDue()
	if err != nil {
		return nil, err
	}
	pending, err := c.PendingPayout()
	if err != nil {
		return nil, err
	}
	return &port.CampaignStatus{
		Campaign:       *c,
		EscrowAccount:  custody.EscrowAccount(c.ID),
		EffectiveViews: effective,
		TotalDue:       due,
		PendingPayout:  pending,
	}, nil
}

// Transfers implements port.SettlementUseCase.
func (u *SettlementUseCase) Transfers(ctx context.Context, id domain.CampaignID) ([]domain.Transfer, error) {
	c, err := u.store.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return u.store.Transfers(ctx, id)
}

// Balance implements port.SettlementUseCase.
func (u *SettlementUseCase) Balance(ctx context.Context, account domain.AccountID) (uint64, error) {
	if account == "" {
		return 0, domain.ErrInvalidAccount
	}
	return u.store.Balance(ctx, account)
}

// ActiveCampaigns implements port.SettlementUseCase.
func (u *SettlementUseCase) ActiveCampaigns(ctx context.Context, after domain.CampaignID, limit int) ([]domain.CampaignID, error) {
	return u.store.ListActive(ctx, after, limit)
}

func loadCampaign(ctx context.Context, tx port.Tx) (domain.Campaign, error) {
	c, err := tx.Campaign(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}
	if c == nil {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	return *c, nil
}
