package db

import (
	"context"
	"crypto/ed25519"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachpay/internal/core/domain"
)

type minterFunc func(ctx context.Context, account domain.AccountID, amount uint64) error

func (f minterFunc) Mint(ctx context.Context, account domain.AccountID, amount uint64) error {
	return f(ctx, account, amount)
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestSeedFundsIdentities(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	id := domain.IdentityFromKey(pub)

	funded := map[domain.AccountID]uint64{}
	m := minterFunc(func(_ context.Context, account domain.AccountID, amount uint64) error {
		funded[account] += amount
		return nil
	})
	require.NoError(t, Seed(context.Background(), m, discard(), []string{string(id)}, 500))
	assert.Equal(t, map[domain.AccountID]uint64{id.Account(): 500}, funded)
}

func TestSeedGeneratesIdentity(t *testing.T) {
	var got []domain.AccountID
	m := minterFunc(func(_ context.Context, account domain.AccountID, _ uint64) error {
		got = append(got, account)
		return nil
	})
	require.NoError(t, Seed(context.Background(), m, discard(), nil, 1))
	require.Len(t, got, 1)
	_, err := domain.ParseIdentity(string(got[0]))
	assert.NoError(t, err)
}

func TestSeedErrors(t *testing.T) {
	ok := minterFunc(func(context.Context, domain.AccountID, uint64) error { return nil })
	err := Seed(context.Background(), ok, discard(), []string{"not-a-key"}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentity)

	pub, _, _ := ed25519.GenerateKey(nil)
	boom := errors.New("boom")
	failing := minterFunc(func(context.Context, domain.AccountID, uint64) error { return boom })
	err = Seed(context.Background(), failing, discard(), []string{string(domain.IdentityFromKey(pub))}, 1)
	assert.ErrorIs(t, err, boom)
}
