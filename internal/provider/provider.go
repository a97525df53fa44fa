// Package provider defines the contract between the auth core and external
// identity providers.
package provider

import "context"

// Identity is a verified external identity. It contains facts extracted from a
// cryptographically validated assertion, never self-asserted values.
type Identity struct {
	Subject string // provider-scoped unique user identifier (sub claim)
	Email   string
	Name    string
	Picture string
}

// Verifier validates a raw identity assertion and extracts the identity it
// certifies. Implementations must reject the token on any signature, expiry,
// or audience failure; no partial trust.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}
