package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port/mocks"
)

func newMockedUseCase(t *testing.T) (*SettlementUseCase, *mocks.MockStore) {
	t.Helper()
	store := mocks.NewMockStore(t)
	custodian, err := custody.NewCustodian(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	guard, err := domain.NewGuard(identity(t))
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSettlementUseCase(store, custodian, guard, &fixedClock{now: start}, logger), store
}

func TestStoreFailuresPropagate(t *testing.T) {
	svc, store := newMockedUseCase(t)
	down := errors.New("connection reset")
	store.EXPECT().Atomic(mock.Anything, domain.CampaignID("c1"), mock.Anything).Return(down)

	_, err := svc.SettlePayout(context.Background(), "c1")
	assert.ErrorIs(t, err, down)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestReadsOfUnknownCampaign(t *testing.T) {
	svc, store := newMockedUseCase(t)
	store.EXPECT().GetCampaign(mock.Anything, domain.CampaignID("nope")).Return(nil, nil)

	_, err := svc.CampaignStatus(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	_, err = svc.Transfers(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestBalanceAndActiveCampaignsDelegate(t *testing.T) {
	svc, store := newMockedUseCase(t)
	store.EXPECT().Balance(mock.Anything, domain.AccountID("acct")).Return(42, nil)
	store.EXPECT().ListActive(mock.Anything, domain.CampaignID("b"), 10).Return([]domain.CampaignID{"c"}, nil)

	bal, err := svc.Balance(context.Background(), "acct")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), bal)

	_, err = svc.Balance(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)

	ids, err := svc.ActiveCampaigns(context.Background(), "b", 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.CampaignID{"c"}, ids)
}

func TestUpdateMetricsChecksOracleBeforeStore(t *testing.T) {
	svc, _ := newMockedUseCase(t)
	_, err := svc.UpdateMetrics(context.Background(), identity(t), "c1", 1, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedOracle)
}
