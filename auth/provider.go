package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ProviderUser is what the identity provider returns when a one-time
// session_id from the OAuth callback fragment is exchanged.
type ProviderUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Provider resolves one-time OAuth session IDs against the external identity
// provider.
type Provider struct {
	BaseURL string
	HTTP    *http.Client
}

func NewProvider() *Provider {
	base := os.Getenv("AUTH_PROVIDER_URL")
	if base == "" {
		base = "https://demobackend.emergentagent.com"
	}
	return &Provider{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ResolveSession trades the one-time session ID for the user's profile. The
// provider invalidates the ID after the first successful call, so callers
// must not retry a consumed ID.
func (p *Provider) ResolveSession(ctx context.Context, sessionID string) (ProviderUser, error) {
	var user ProviderUser

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/auth/v1/env/oauth/session-data", nil)
	if err != nil {
		return user, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return user, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return user, fmt.Errorf("identity provider rejected session: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return user, err
	}
	if user.Email == "" {
		return user, fmt.Errorf("identity provider returned no email")
	}
	return user, nil
}
