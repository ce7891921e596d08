// Package custody derives escrow account addresses from campaign ids and
// mints the capabilities that authorize spending from them. Escrow accounts
// have no private key: the only way to debit one is a Capability issued by the
// Custodian the settlement use case was constructed with.
package custody

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/blake2b"

	"reachpay/internal/core/domain"
)

const escrowPrefix = "escrow_"

// escrowAccountLen never equals the 43-byte length of an encoded identity.
var escrowAccountLen = len(escrowPrefix) + base64.RawURLEncoding.EncodedLen(blake2b.Size256)

// EscrowAccount returns the escrow address bound to a campaign. The same id
// always yields the same address, so no index is needed to find it.
func EscrowAccount(id domain.CampaignID) domain.AccountID {
	sum := blake2b.Sum256([]byte("escrow:" + string(id)))
	return domain.AccountID(escrowPrefix + base64.RawURLEncoding.EncodeToString(sum[:]))
}

// Capability authorizes debits from one escrow account.
type Capability struct {
	account domain.AccountID
	tag     []byte
}

// Account is the escrow address the capability spends from.
func (c Capability) Account() domain.AccountID {
	return c.account
}

// Authority is the credential presented with a transfer: either a verified
// signer spending from its own account or an escrow capability.
type Authority struct {
	signer domain.Identity
	escrow *Capability
}

// Signer is the authority of an authenticated identity over its own account.
func Signer(id domain.Identity) Authority {
	return Authority{signer: id}
}

// Escrow wraps an escrow capability.
func Escrow(c Capability) Authority {
	return Authority{escrow: &c}
}

// Custodian holds the key escrow capabilities are tagged with.
type Custodian struct {
	key []byte
}

// NewCustodian returns a custodian keyed by secret, which must be 16 to 64
// bytes long.
func NewCustodian(secret []byte) (*Custodian, error) {
	if len(secret) < 16 || len(secret) > blake2b.Size {
		return nil, errors.New("custody secret must be between 16 and 64 bytes")
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Custodian{key: key}, nil
}

// Capability mints the spending capability for a campaign's escrow account.
func (c *Custodian) Capability(id domain.CampaignID) Capability {
	account := EscrowAccount(id)
	return Capability{account: account, tag: c.tag(account)}
}

// Authorize reports whether a may debit from.
func (c *Custodian) Authorize(a Authority, from domain.AccountID) error {
	switch {
	case a.escrow != nil:
		if a.escrow.account != from || subtle.ConstantTimeCompare(a.escrow.tag, c.tag(from)) != 1 {
			return domain.ErrUnauthorizedTransfer
		}
		return nil
	case a.signer != "":
		if IsEscrow(from) || a.signer.Account() != from {
			return domain.ErrUnauthorizedTransfer
		}
		return nil
	default:
		return domain.ErrUnauthorizedTransfer
	}
}

// IsEscrow reports whether account is an escrow address.
func IsEscrow(account domain.AccountID) bool {
	return len(account) == escrowAccountLen && account[:len(escrowPrefix)] == escrowPrefix
}

func (c *Custodian) tag(account domain.AccountID) []byte {
	// blake2b.New256 only fails for keys over 64 bytes, which NewCustodian rejects.
	h, _ := blake2b.New256(c.key)
	h.Write([]byte(account))
	return h.Sum(nil)
}
