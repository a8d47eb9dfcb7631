// Package googleauth validates Google ID tokens against the tokeninfo
// endpoint and reduces them to the claims the auth service needs.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/babies-shop/commerce-api/internal/core/ports"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Verifier implements ports.IdentityVerifier for Google sign-in.
type Verifier struct {
	clientID string
	http     *http.Client
}

// NewVerifier creates a Verifier that accepts only tokens issued for
// clientID (the OAuth audience check).
func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		clientID: clientID,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenInfo struct {
	Audience      string `json:"aud"`
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// Verify checks the ID token with Google and returns the attested profile.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*ports.ExternalProfile, error) {
	endpoint := tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("google verify: %w", err)
	}

	resp, err := v.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google verify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google verify: token rejected (status %d)", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("google verify: decode: %w", err)
	}

	if info.Audience != v.clientID {
		return nil, fmt.Errorf("google verify: audience mismatch")
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return nil, fmt.Errorf("google verify: email not verified")
	}

	return &ports.ExternalProfile{
		Subject:   info.Subject,
		Email:     info.Email,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
	}, nil
}
