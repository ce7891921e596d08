package configs

import "time"

// Oracle identifies the single metrics reporter. Identity is the unpadded
// base64url encoding of its ed25519 public key.
type Oracle struct {
	Identity string `env:"IDENTITY,required,notEmpty"`
}

// Auth configures verification of caller tokens on the HTTP API.
type Auth struct {
	// Audience must appear in the token's aud claim.
	Audience string `env:"AUDIENCE" envDefault:"reachpay"`
	// Leeway tolerates clock skew when checking exp, nbf and iat.
	Leeway time.Duration `env:"LEEWAY" envDefault:"30s"`
}
