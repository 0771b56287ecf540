package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSession(t *testing.T) {
	var gotSessionID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/env/oauth/session-data", r.URL.Path)
		gotSessionID = r.Header.Get("X-Session-ID")
		json.NewEncoder(w).Encode(ProviderUser{
			ID:      "u1",
			Email:   "ana@example.com",
			Name:    "Ana",
			Picture: "https://example.com/ana.jpg",
		})
	}))
	t.Cleanup(server.Close)

	provider := &Provider{BaseURL: server.URL, HTTP: server.Client()}
	user, err := provider.ResolveSession(context.Background(), "one-time-token")
	require.NoError(t, err)
	assert.Equal(t, "one-time-token", gotSessionID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
}

func TestResolveSessionRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	provider := &Provider{BaseURL: server.URL, HTTP: server.Client()}
	_, err := provider.ResolveSession(context.Background(), "spent-token")
	assert.Error(t, err)
}

func TestResolveSessionRequiresEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ProviderUser{ID: "u1"})
	}))
	t.Cleanup(server.Close)

	provider := &Provider{BaseURL: server.URL, HTTP: server.Client()}
	_, err := provider.ResolveSession(context.Background(), "token")
	assert.Error(t, err)
}
