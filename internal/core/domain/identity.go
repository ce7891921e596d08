package domain

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"
	"unicode"
)

// Identity is a party's ed25519 public key in unpadded base64url form.
type Identity string

// AccountID addresses a balance in the token ledger. A party's account is its
// identity; escrow accounts are derived from the campaign id.
type AccountID string

// CampaignID is the brand-chosen identifier of a campaign.
type CampaignID string

// ParseIdentity validates s as an encoded ed25519 public key.
func ParseIdentity(s string) (Identity, error) {
	id := Identity(strings.TrimSpace(s))
	if _, err := id.PublicKey(); err != nil {
		return "", err
	}
	return id, nil
}

// IdentityFromKey encodes pub as an Identity.
func IdentityFromKey(pub ed25519.PublicKey) Identity {
	return Identity(base64.RawURLEncoding.EncodeToString(pub))
}

// PublicKey decodes the identity.
func (i Identity) PublicKey() (ed25519.PublicKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(i))
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, ErrInvalidIdentity
	}
	return ed25519.PublicKey(raw), nil
}

// Account returns the ledger account controlled by the identity.
func (i Identity) Account() AccountID {
	return AccountID(i)
}

// ParseCampaignID validates a brand-supplied campaign id.
func ParseCampaignID(s string) (CampaignID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", ErrInvalidCampaignID
	}
	for _, r := range s {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) || r == '/' {
			return "", ErrInvalidCampaignID
		}
	}
	return CampaignID(s), nil
}
