package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"gatekeeper/internal/provider"
)

const issuerURL = "https://accounts.google.com"

// Verifier validates Google ID tokens against the Google OIDC issuer, with the
// configured client ID as the expected audience. It holds only immutable
// configuration; one instance is safe for concurrent use.
type Verifier struct {
	verifier    *oidc.IDTokenVerifier
	oauthConfig *oauth2.Config
}

var _ provider.Verifier = (*Verifier)(nil)

// New discovers the Google OIDC configuration and builds a verifier bound to
// the given client ID.
func New(ctx context.Context, clientID, clientSecret, redirectURL string) (*Verifier, error) {
	if clientID == "" {
		return nil, errors.New("google client id is required")
	}

	oidcProvider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("init google oidc provider: %w", err)
	}

	return &Verifier{
		verifier: oidcProvider.Verifier(&oidc.Config{ClientID: clientID}),
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     oidcProvider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

// Verify checks the raw ID token's signature, expiry, and audience against
// Google's published keys and extracts the identity it certifies.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*provider.Identity, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("google id_token verification failed: %w", err)
	}

	var claims struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("google id_token claims parse failed: %w", err)
	}

	if idToken.Subject == "" || claims.Email == "" {
		return nil, errors.New("google id_token missing required claims")
	}

	return &provider.Identity{
		Subject: idToken.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

// AuthCodeURL builds the OAuth authorization URL for the redirect flow.
func (v *Verifier) AuthCodeURL(state string) string {
	return v.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}
