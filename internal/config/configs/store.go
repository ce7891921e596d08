package configs

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects the storage backend for campaigns and balances.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// Normalized returns the lower-cased driver name or an error when it is not
// one of the supported backends.
func (c Store) Normalized() (string, error) {
	switch d := strings.ToLower(strings.TrimSpace(c.Driver)); d {
	case StoreMemory, StorePostgres:
		return d, nil
	default:
		return "", fmt.Errorf("unknown store driver %q", c.Driver)
	}
}

// Custody holds the secret escrow capabilities are keyed with. The same
// secret must be used by every process sharing a database.
type Custody struct {
	Secret string `env:"SECRET"`
}

// Key decodes Secret. Standard and URL-safe base64, padded or not, are
// accepted. An empty secret yields a nil key.
func (c Custody) Key() ([]byte, error) {
	s := strings.TrimSpace(c.Secret)
	if s == "" {
		return nil, nil
	}
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding,
	} {
		if key, err := enc.DecodeString(s); err == nil {
			return key, nil
		}
	}
	return nil, fmt.Errorf("custody secret is not valid base64")
}
