package db

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"log/slog"

	"reachpay/internal/core/domain"
)

// Minter credits ledger accounts outside of any campaign.
type Minter interface {
	Mint(ctx context.Context, account domain.AccountID, amount uint64) error
}

// Seed funds the given identities with amount tokens each. When no identity
// is given, one demo brand key pair is generated and its private key is
// logged so that tokens can be signed for it locally.
func Seed(ctx context.Context, m Minter, logger *slog.Logger, identities []string, amount uint64) error {
	if len(identities) == 0 {
		pub, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return err
		}
		id := domain.IdentityFromKey(pub)
		logger.Warn("generated demo brand identity",
			slog.String("identity", string(id)),
			slog.String("private_key", base64.RawURLEncoding.EncodeToString(priv.Seed())),
		)
		identities = []string{string(id)}
	}

	for _, raw := range identities {
		id, err := domain.ParseIdentity(raw)
		if err != nil {
			return fmt.Errorf("seed identity %q: %w", raw, err)
		}
		if err = m.Mint(ctx, id.Account(), amount); err != nil {
			return fmt.Errorf("seed identity %q: %w", raw, err)
		}
		logger.Info("demo account funded",
			slog.String("event", "account_funded"),
			slog.String("account", string(id.Account())),
			slog.Uint64("amount", amount),
		)
	}
	return nil
}
