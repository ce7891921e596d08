package usecase

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachpay/internal/adapter/memory"
	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fixture struct {
	svc     *SettlementUseCase
	store   *memory.Store
	clock   *fixedClock
	brand   domain.Identity
	creator domain.Identity
	oracle  domain.Identity
}

var start = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func identity(t *testing.T) domain.Identity {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return domain.IdentityFromKey(pub)
}

func newFixture(t *testing.T, brandFunds uint64) *fixture {
	t.Helper()
	custodian, err := custody.NewCustodian(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	store := memory.NewStore(custodian)
	f := &fixture{
		store:   store,
		clock:   &fixedClock{now: start},
		brand:   identity(t),
		creator: identity(t),
		oracle:  identity(t),
	}
	guard, err := domain.NewGuard(f.oracle)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewSettlementUseCase(store, custodian, guard, f.clock, logger)
	if brandFunds > 0 {
		require.NoError(t, store.Mint(context.Background(), f.brand.Account(), brandFunds))
	}
	return f
}

func (f *fixture) terms(id domain.CampaignID) domain.CampaignTerms {
	return domain.CampaignTerms{
		ID:         id,
		CPM:        5,
		LikeWeight: 2,
		MaxBudget:  10_000,
		Creator:    f.creator,
		StartTime:  start,
		EndTime:    start.Add(7 * 24 * time.Hour),
	}
}

func (f *fixture) activeCampaign(t *testing.T, id domain.CampaignID) {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.CreateCampaign(ctx, f.brand, f.terms(id))
	require.NoError(t, err)
	_, err = f.svc.AcceptCampaign(ctx, f.creator, id)
	require.NoError(t, err)
}

// assertConserved checks escrow + paid + refunded == max_budget against both
// the record and the ledger.
func (f *fixture) assertConserved(t *testing.T, id domain.CampaignID) {
	t.Helper()
	ctx := context.Background()
	c, err := f.store.GetCampaign(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, c.MaxBudget, c.EscrowBalance+c.TotalPaid+c.TotalRefunded)
	escrow, err := f.store.Balance(ctx, custody.EscrowAccount(id))
	require.NoError(t, err)
	assert.Equal(t, c.EscrowBalance, escrow)
}

func TestCreateCampaignMovesBudgetIntoEscrow(t *testing.T) {
	f := newFixture(t, 15_000)
	ctx := context.Background()

	c, err := f.svc.CreateCampaign(ctx, f.brand, f.terms("c1"))
	require.NoError(t, err)
	assert.False(t, c.IsActive)
	assert.Equal(t, f.brand, c.Brand)

	brand, err := f.store.Balance(ctx, f.brand.Account())
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000), brand)
	f.assertConserved(t, "c1")

	transfers, err := f.svc.Transfers(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, domain.TransferDeposit, transfers[0].Kind)
	assert.Equal(t, custody.EscrowAccount("c1"), transfers[0].To)
}

func TestCreateCampaignRejectsDuplicateID(t *testing.T) {
	f := newFixture(t, 30_000)
	ctx := context.Background()
	_, err := f.svc.CreateCampaign(ctx, f.brand, f.terms("dup"))
	require.NoError(t, err)

	_, err = f.svc.CreateCampaign(ctx, f.brand, f.terms("dup"))
	assert.ErrorIs(t, err, domain.ErrCampaignExists)
	brand, _ := f.store.Balance(ctx, f.brand.Account())
	assert.Equal(t, uint64(20_000), brand)
}

func TestCreateCampaignInvalidInputTouchesNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CampaignTerms)
		want   error
	}{
		{"zero cpm", func(terms *domain.CampaignTerms) { terms.CPM = 0 }, domain.ErrInvalidCPM},
		{"zero budget", func(terms *domain.CampaignTerms) { terms.MaxBudget = 0 }, domain.ErrInvalidBudget},
		{"zero like weight", func(terms *domain.CampaignTerms) { terms.LikeWeight = 0 }, domain.ErrInvalidLikeWeight},
		{"end equals start", func(terms *domain.CampaignTerms) { terms.EndTime = terms.StartTime }, domain.ErrInvalidTimeRange},
		{"end before start", func(terms *domain.CampaignTerms) { terms.EndTime = terms.StartTime.Add(-time.Hour) }, domain.ErrInvalidTimeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 10_000)
			ctx := context.Background()
			terms := f.terms("bad")
			tt.mutate(&terms)

			_, err := f.svc.CreateCampaign(ctx, f.brand, terms)
			assert.ErrorIs(t, err, tt.want)

			c, err := f.store.GetCampaign(ctx, "bad")
			require.NoError(t, err)
			assert.Nil(t, c)
			brand, _ := f.store.Balance(ctx, f.brand.Account())
			assert.Equal(t, uint64(10_000), brand)
			escrow, _ := f.store.Balance(ctx, custody.EscrowAccount("bad"))
			assert.Zero(t, escrow)
			transfers, err := f.svc.Transfers(ctx, "bad")
			assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
			assert.Empty(t, transfers)
		})
	}
}

func TestCreateCampaignInsufficientFundsIsAtomic(t *testing.T) {
	f := newFixture(t, 9_999)
	ctx := context.Background()

	_, err := f.svc.CreateCampaign(ctx, f.brand, f.terms("poor"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	c, err := f.store.GetCampaign(ctx, "poor")
	require.NoError(t, err)
	assert.Nil(t, c, "record must not exist when the deposit failed")
	escrow, _ := f.store.Balance(ctx, custody.EscrowAccount("poor"))
	assert.Zero(t, escrow)
}

func TestAcceptRequiresCreator(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	_, err := f.svc.CreateCampaign(ctx, f.brand, f.terms("c1"))
	require.NoError(t, err)

	_, err = f.svc.AcceptCampaign(ctx, f.brand, "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedCreator)
	c, _ := f.store.GetCampaign(ctx, "c1")
	assert.False(t, c.IsActive)

	accepted, err := f.svc.AcceptCampaign(ctx, f.creator, "c1")
	require.NoError(t, err)
	assert.True(t, accepted.IsActive)

	_, err = f.svc.AcceptCampaign(ctx, f.creator, "c1")
	assert.ErrorIs(t, err, domain.ErrCampaignAlreadyActive)

	_, err = f.svc.AcceptCampaign(ctx, f.creator, "missing")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestUpdateMetricsRequiresOracleAndMonotonicity(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	_, err := f.svc.CreateCampaign(ctx, f.brand, f.terms("c1"))
	require.NoError(t, err)

	_, err = f.svc.UpdateMetrics(ctx, f.oracle, "c1", 10, 1)
	assert.ErrorIs(t, err, domain.ErrCampaignNotActive)

	_, err = f.svc.AcceptCampaign(ctx, f.creator, "c1")
	require.NoError(t, err)

	_, err = f.svc.UpdateMetrics(ctx, f.creator, "c1", 10, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedOracle)

	_, err = f.svc.UpdateMetrics(ctx, f.oracle, "c1", 5_000, 100)
	require.NoError(t, err)
	_, err = f.svc.UpdateMetrics(ctx, f.oracle, "c1", 4_999, 200)
	assert.ErrorIs(t, err, domain.ErrMetricsCannotDecrease)

	c, _ := f.store.GetCampaign(ctx, "c1")
	assert.Equal(t, uint64(5_000), c.Views)
	assert.Equal(t, uint64(100), c.Likes)
}

func TestSettlePayoutWorkedExample(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	f.activeCampaign(t, "c1")

	_, err := f.svc.UpdateMetrics(ctx, f.oracle, "c1", 100_000, 1_000)
	require.NoError(t, err)

	res, err := f.svc.SettlePayout(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, uint64(510), res.Settlement.Payout)
	assert.Equal(t, uint64(102_000), res.Settlement.EffectiveViews)
	assert.Equal(t, uint64(9_490), res.Campaign.EscrowBalance)
	assert.Equal(t, uint64(510), res.Campaign.TotalPaid)

	creator, _ := f.store.Balance(ctx, f.creator.Account())
	assert.Equal(t, uint64(510), creator)
	f.assertConserved(t, "c1")

	res, err = f.svc.SettlePayout(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, res.Settlement.Payout)
	creator, _ = f.store.Balance(ctx, f.creator.Account())
	assert.Equal(t, uint64(510), creator)
}

func TestSettlePayoutExhaustsEscrowAndDeactivates(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	f.activeCampaign(t, "c1")

	// 1,999,000 effective views earn 9,995 of the 10,000 budget.
	_, err := f.svc.UpdateMetrics(ctx, f.oracle, "c1", 1_999_000, 0)
	require.NoError(t, err)
	_, err = f.svc.SettlePayout(ctx, "c1")
	require.NoError(t, err)

	// Another 300 is earned but only 5 remains.
	_, err = f.svc.UpdateMetrics(ctx, f.oracle, "c1", 2_059_000, 0)
	require.NoError(t, err)
	res, err := f.svc.SettlePayout(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.Settlement.Payout)
	assert.Zero(t, res.Campaign.EscrowBalance)
	assert.False(t, res.Campaign.IsActive)
	f.assertConserved(t, "c1")

	_, err = f.svc.SettlePayout(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrCampaignNotActive)
}

func TestSettlePayoutAfterWindowDeactivates(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	f.activeCampaign(t, "c1")
	_, err := f.svc.UpdateMetrics(ctx, f.oracle, "c1", 2_000, 0)
	require.NoError(t, err)

	f.clock.Set(start.Add(8 * 24 * time.Hour))
	res, err := f.svc.SettlePayout(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), res.Settlement.Payout)
	assert.False(t, res.Campaign.IsActive)
}

func TestSettlePayoutOverflowLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	f.activeCampaign(t, "c1")
	_, err := f.svc.UpdateMetrics(ctx, f.oracle, "c1", 0, 1<<63)
	require.NoError(t, err)
	before, _ := f.store.GetCampaign(ctx, "c1")

	_, err = f.svc.SettlePayout(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
	after, _ := f.store.GetCampaign(ctx, "c1")
	assert.Equal(t, before, after)

	_, err = f.svc.CampaignStatus(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)

	closed, err := f.svc.CloseCampaign(ctx, f.brand, "c1")
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), closed.Refunded)
}

func TestCloseCampaignRefundsBrand(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	f.activeCampaign(t, "c1")
	// 1,950,000 effective views earn 9,750, leaving 250 in escrow.
	_, err := f.svc.UpdateMetrics(ctx, f.oracle, "c1", 1_950_000, 0)
	require.NoError(t, err)
	_, err = f.svc.SettlePayout(ctx, "c1")
	require.NoError(t, err)

	_, err = f.svc.CloseCampaign(ctx, f.creator, "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedBrand)

	res, err := f.svc.CloseCampaign(ctx, f.brand, "c1")
	require.NoError(t, err)
	assert.Equal(t, uint64(250), res.Refunded)
	assert.Zero(t, res.Campaign.EscrowBalance)
	assert.False(t, res.Campaign.IsActive)

	brand, _ := f.store.Balance(ctx, f.brand.Account())
	assert.Equal(t, uint64(250), brand)
	f.assertConserved(t, "c1")

	again, err := f.svc.CloseCampaign(ctx, f.brand, "c1")
	require.NoError(t, err)
	assert.Zero(t, again.Refunded)

	_, err = f.svc.AcceptCampaign(ctx, f.creator, "c1")
	assert.ErrorIs(t, err, domain.ErrNoFundsInEscrow)

	transfers, err := f.svc.Transfers(ctx, "c1")
	require.NoError(t, err)
	kinds := make([]domain.TransferKind, 0, len(transfers))
	for _, tr := range transfers {
		kinds = append(kinds, tr.Kind)
	}
	assert.Equal(t, []domain.TransferKind{domain.TransferDeposit, domain.TransferPayout, domain.TransferRefund}, kinds)
}

func TestCloseBeforeAcceptRefundsEverything(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	_, err := f.svc.CreateCampaign(ctx, f.brand, f.terms("c1"))
	require.NoError(t, err)

	res, err := f.svc.CloseCampaign(ctx, f.brand, "c1")
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), res.Refunded)
	brand, _ := f.store.Balance(ctx, f.brand.Account())
	assert.Equal(t, uint64(10_000), brand)
}

func TestCampaignStatus(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	f.activeCampaign(t, "c1")
	_, err := f.svc.UpdateMetrics(ctx, f.oracle, "c1", 100_000, 1_000)
	require.NoError(t, err)

	st, err := f.svc.CampaignStatus(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, uint64(102_000), st.EffectiveViews)
	assert.Equal(t, uint64(510), st.TotalDue)
	assert.Equal(t, uint64(510), st.PendingPayout)
	assert.Equal(t, custody.EscrowAccount("c1"), st.EscrowAccount)

	_, err = f.svc.CampaignStatus(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

// TestConcurrentSettlementPaysOnce ensures concurrent settlements of the same
// campaign never pay the same earnings twice.
func TestConcurrentSettlementPaysOnce(t *testing.T) {
	f := newFixture(t, 10_000)
	ctx := context.Background()
	f.activeCampaign(t, "c1")
	_, err := f.svc.UpdateMetrics(ctx, f.oracle, "c1", 100_000, 1_000)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		payouts []uint64
	)
	count := 20
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			res, err := f.svc.SettlePayout(ctx, "c1")
			if err != nil {
				return
			}
			mu.Lock()
			payouts = append(payouts, res.Settlement.Payout)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var total uint64
	for _, p := range payouts {
		total += p
	}
	assert.Len(t, payouts, count)
	assert.Equal(t, uint64(510), total)
	f.assertConserved(t, "c1")
}

// TestIndependentCampaignsShareBrandBalance ensures deposits for different
// campaigns draw down the same brand account without overspending it.
func TestIndependentCampaignsShareBrandBalance(t *testing.T) {
	f := newFixture(t, 35_000)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for _, id := range []domain.CampaignID{"a", "b", "c", "d", "e"} {
		wg.Add(1)
		go func(id domain.CampaignID) {
			defer wg.Done()
			_, err := f.svc.CreateCampaign(ctx, f.brand, f.terms(id))
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)

	var ok, failed int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			failed++
		}
	}
	assert.Equal(t, 3, ok)
	assert.Equal(t, 2, failed)
	brand, _ := f.store.Balance(ctx, f.brand.Account())
	assert.Equal(t, uint64(5_000), brand)
}

var _ port.Clock = (*fixedClock)(nil)
