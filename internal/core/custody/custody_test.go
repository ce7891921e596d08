package custody

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachpay/internal/core/domain"
)

func newCustodian(t *testing.T, seed byte) *Custodian {
	t.Helper()
	c, err := NewCustodian(bytes.Repeat([]byte{seed}, 32))
	require.NoError(t, err)
	return c
}

func TestEscrowAccountIsDeterministic(t *testing.T) {
	a := EscrowAccount("camp-1")
	assert.Equal(t, a, EscrowAccount("camp-1"))
	assert.NotEqual(t, a, EscrowAccount("camp-2"))
	assert.True(t, IsEscrow(a))
}

func TestCapabilityOnlySpendsItsOwnEscrow(t *testing.T) {
	c := newCustodian(t, 1)
	capability := c.Capability("camp-1")

	assert.NoError(t, c.Authorize(Escrow(capability), EscrowAccount("camp-1")))
	assert.ErrorIs(t, c.Authorize(Escrow(capability), EscrowAccount("camp-2")), domain.ErrUnauthorizedTransfer)
}

func TestCapabilityFromAnotherCustodianIsRejected(t *testing.T) {
	forged := newCustodian(t, 2).Capability("camp-1")
	err := newCustodian(t, 1).Authorize(Escrow(forged), EscrowAccount("camp-1"))
	assert.ErrorIs(t, err, domain.ErrUnauthorizedTransfer)

	err = newCustodian(t, 1).Authorize(Escrow(Capability{account: EscrowAccount("camp-1")}), EscrowAccount("camp-1"))
	assert.ErrorIs(t, err, domain.ErrUnauthorizedTransfer)
}

func TestSignerSpendsOnlyOwnAccount(t *testing.T) {
	c := newCustodian(t, 1)
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	id := domain.IdentityFromKey(pub)

	assert.NoError(t, c.Authorize(Signer(id), id.Account()))
	assert.ErrorIs(t, c.Authorize(Signer(id), "someone-else"), domain.ErrUnauthorizedTransfer)
	assert.ErrorIs(t, c.Authorize(Signer(id), EscrowAccount("camp-1")), domain.ErrUnauthorizedTransfer)
	assert.ErrorIs(t, c.Authorize(Authority{}, id.Account()), domain.ErrUnauthorizedTransfer)
}

func TestNewCustodianRejectsBadKeys(t *testing.T) {
	_, err := NewCustodian(make([]byte, 8))
	assert.Error(t, err)
	_, err = NewCustodian(make([]byte, 65))
	assert.Error(t, err)
}
