package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"reachpay/internal/core/domain"
)

// Authenticator verifies caller tokens. A token is an EdDSA-signed JWT whose
// subject is the caller's identity; it is verified with the public key the
// identity encodes, so holding the private key is what proves the identity.
type Authenticator struct {
	audience string
	leeway   time.Duration
	now      func() time.Time
}

// NewAuthenticator returns an Authenticator accepting tokens for audience.
// now may be nil, in which case the wall clock is used.
func NewAuthenticator(audience string, leeway time.Duration, now func() time.Time) *Authenticator {
	if now == nil {
		now = time.Now
	}
	return &Authenticator{audience: audience, leeway: leeway, now: now}
}

type callerKey struct{}

// WithCaller returns a context carrying the authenticated caller.
func WithCaller(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, id)
}

// CallerFrom returns the authenticated caller stored in ctx.
func CallerFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(callerKey{}).(domain.Identity)
	return id, ok
}

// Verify checks the token and returns the identity it was signed by.
func (a *Authenticator) Verify(raw string) (domain.Identity, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		id, err := domain.ParseIdentity(claims.Subject)
		if err != nil {
			return nil, err
		}
		return id.PublicKey()
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithAudience(a.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(a.leeway),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", err
	}
	return domain.Identity(claims.Subject), nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller identity in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			unauthorized(w, "missing bearer token")
			return
		}
		caller, err := a.Verify(strings.TrimSpace(raw))
		if err != nil {
			unauthorized(w, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="reachpay"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: "Unauthenticated", Message: msg})
}
