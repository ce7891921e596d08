package postgres

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachpay/internal/config/configs"
	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
	"reachpay/internal/db"
)

// newTestStore connects to the database named by REACHPAY_TEST_PSQL and
// applies migrations. Tests are skipped when it is unset.
func newTestStore(t *testing.T) (*Store, *custody.Custodian) {
	t.Helper()
	addr := os.Getenv("REACHPAY_TEST_PSQL")
	if addr == "" {
		t.Skip("REACHPAY_TEST_PSQL not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	custodian, err := custody.NewCustodian(bytes.Repeat([]byte{9}, 32))
	require.NoError(t, err)
	return NewStore(pool, custodian, 5), custodian
}

func TestStoreCampaignLifecycle(t *testing.T) {
	s, custodian := newTestStore(t)
	ctx := context.Background()

	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	brand := domain.IdentityFromKey(pub)
	pub, _, err = ed25519.GenerateKey(nil)
	require.NoError(t, err)
	creator := domain.IdentityFromKey(pub)

	now := time.Now().UTC().Truncate(time.Microsecond)
	c, err := domain.NewCampaign(brand, domain.CampaignTerms{
		ID:         domain.CampaignID(uuid.NewString()),
		CPM:        10,
		LikeWeight: 5,
		MaxBudget:  10000,
		Creator:    creator,
		StartTime:  now,
		EndTime:    now.Add(time.Hour),
	}, now)
	require.NoError(t, err)
	escrow := custody.EscrowAccount(c.ID)

	require.NoError(t, s.Mint(ctx, brand.Account(), 10000))
	require.NoError(t, s.Atomic(ctx, c.ID, func(ctx context.Context, tx port.Tx) error {
		if err := tx.Insert(ctx, c); err != nil {
			return err
		}
		deposit, err := domain.NewTransfer(c.ID, domain.TransferDeposit, brand.Account(), escrow, c.MaxBudget, now)
		if err != nil {
			return err
		}
		return tx.Transfer(ctx, deposit, custody.Signer(brand))
	}))

	err = s.Atomic(ctx, c.ID, func(ctx context.Context, tx port.Tx) error {
		return tx.Insert(ctx, c)
	})
	assert.ErrorIs(t, err, domain.ErrCampaignExists)

	got, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(10000), got.EscrowBalance)
	assert.True(t, got.StartTime.Equal(c.StartTime))

	c.IsActive, c.Views = true, 51000
	next, s1, err := c.Settle(now)
	require.NoError(t, err)
	require.Equal(t, uint64(510), s1.Payout)
	require.NoError(t, s.Atomic(ctx, c.ID, func(ctx context.Context, tx port.Tx) error {
		payout, err := domain.NewTransfer(c.ID, domain.TransferPayout, escrow, creator.Account(), s1.Payout, now)
		if err != nil {
			return err
		}
		if err = tx.Transfer(ctx, payout, custody.Escrow(custodian.Capability(c.ID))); err != nil {
			return err
		}
		return tx.Save(ctx, next)
	}))

	err = s.Atomic(ctx, c.ID, func(ctx context.Context, tx port.Tx) error {
		theft, err := domain.NewTransfer(c.ID, domain.TransferPayout, escrow, brand.Account(), 1, now)
		if err != nil {
			return err
		}
		return tx.Transfer(ctx, theft, custody.Signer(brand))
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedTransfer)

	bal, err := s.Balance(ctx, creator.Account())
	require.NoError(t, err)
	assert.Equal(t, uint64(510), bal)
	bal, err = s.Balance(ctx, escrow)
	require.NoError(t, err)
	assert.Equal(t, uint64(9490), bal)

	transfers, err := s.Transfers(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, domain.TransferDeposit, transfers[0].Kind)
	assert.Equal(t, domain.TransferPayout, transfers[1].Kind)

	ids, err := s.ListActive(ctx, "", 0)
	require.NoError(t, err)
	assert.Contains(t, ids, c.ID)
}
