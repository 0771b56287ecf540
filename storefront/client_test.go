package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumina-co/jewelry-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsQueryParameters(t *testing.T) {
	var gotCategory, gotFeatured string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		gotFeatured = r.URL.Query().Get("featured")
		json.NewEncoder(w).Encode([]models.Product{})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	api, err := NewClient(server.URL)
	require.NoError(t, err)

	featured := true
	_, err = api.Products(context.Background(), ProductQuery{Category: "anillos", Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, "anillos", gotCategory)
	assert.Equal(t, "true", gotFeatured)

	_, err = api.Products(context.Background(), ProductQuery{})
	require.NoError(t, err)
	assert.Empty(t, gotCategory)
	assert.Empty(t, gotFeatured)
}

func TestSessionCookiePersistsAcrossCalls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "tok", Path: "/"})
		json.NewEncoder(w).Encode(models.User{Email: "a@b.c", Role: models.RoleCustomer})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session_token"); err != nil {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		json.NewEncoder(w).Encode(models.User{Email: "a@b.c", Role: models.RoleCustomer})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	api, err := NewClient(server.URL)
	require.NoError(t, err)

	// Unauthenticated probe fails.
	_, err = api.Me(context.Background())
	require.Error(t, err)

	// The exchange sets the cookie; the jar carries it from then on.
	_, err = api.ExchangeSession(context.Background(), "one-time")
	require.NoError(t, err)
	user, err := api.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)
}

func TestAPIErrorCarriesDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/admin-login", func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusUnauthorized, "Credenciales inválidas")
	})
	mux.HandleFunc("/api/products/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	api, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = api.AdminLogin(context.Background(), "x", "y")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Credenciales inválidas", apiErr.Detail)

	// The "error" key used by catalog handlers decodes too.
	_, err = api.Product(context.Background(), "missing")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Product not found", apiErr.Detail)
}
