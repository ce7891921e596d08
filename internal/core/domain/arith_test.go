package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAdd(t *testing.T) {
	sum, err := CheckedAdd(math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), sum)

	_, err = CheckedAdd(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
	assert.Equal(t, KindArithmetic, KindOf(err))
}

func TestCheckedMul(t *testing.T) {
	p, err := CheckedMul(1<<32, 1<<31)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), p)

	_, err = CheckedMul(1<<32, 1<<32)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	p, err = CheckedMul(0, math.MaxUint64)
	require.NoError(t, err)
	assert.Zero(t, p)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, uint64(3), SaturatingSub(5, 2))
	assert.Zero(t, SaturatingSub(2, 5))
	assert.Zero(t, SaturatingSub(5, 5))
}

func TestGuard(t *testing.T) {
	oracle := newIdentity(t)
	g, err := NewGuard(oracle)
	require.NoError(t, err)
	c := activeCampaign(t)

	assert.NoError(t, g.RequireOracle(oracle))
	assert.ErrorIs(t, g.RequireOracle(c.Brand), ErrUnauthorizedOracle)
	assert.NoError(t, g.RequireCreator(c.Creator, c))
	assert.ErrorIs(t, g.RequireCreator(c.Brand, c), ErrUnauthorizedCreator)
	assert.NoError(t, g.RequireBrand(c.Brand, c))
	assert.ErrorIs(t, g.RequireBrand(c.Creator, c), ErrUnauthorizedBrand)
	assert.Equal(t, KindAuthorization, KindOf(g.RequireBrand("", c)))

	_, err = NewGuard("short")
	assert.ErrorIs(t, err, ErrInvalidIdentity)
}

func TestParseCampaignID(t *testing.T) {
	id, err := ParseCampaignID("  spring-drop_01 ")
	require.NoError(t, err)
	assert.Equal(t, CampaignID("spring-drop_01"), id)

	for _, bad := range []string{"", "a b", "a/b", string(make([]byte, 65))} {
		_, err = ParseCampaignID(bad)
		assert.ErrorIs(t, err, ErrInvalidCampaignID, bad)
	}
}
