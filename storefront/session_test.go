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

// fakeBackend is a minimal /api double tracking how often each auth
// endpoint was hit.
type fakeBackend struct {
	meCalls       int
	exchangeCalls int
	meUser        *models.User // nil answers 401
	exchangeUser  *models.User // nil answers 401
	adminUser     *models.User // nil answers 401
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		f.meCalls++
		if f.meUser == nil {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		json.NewEncoder(w).Encode(f.meUser)
	})
	mux.HandleFunc("/api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		f.exchangeCalls++
		if f.exchangeUser == nil {
			writeDetail(w, http.StatusUnauthorized, "Invalid session")
			return
		}
		json.NewEncoder(w).Encode(f.exchangeUser)
	})
	mux.HandleFunc("/api/auth/admin-login", func(w http.ResponseWriter, r *http.Request) {
		if f.adminUser == nil {
			writeDetail(w, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		json.NewEncoder(w).Encode(f.adminUser)
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func newTestSession(t *testing.T, backend *fakeBackend) (*SessionController, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)
	api, err := NewClient(server.URL)
	require.NoError(t, err)
	return NewSessionController(api), server
}

func TestStartProbeSetsRoleState(t *testing.T) {
	backend := &fakeBackend{meUser: &models.User{Email: "a@b.c", Role: models.RoleCustomer}}
	sc, _ := newTestSession(t, backend)

	sc.Start(context.Background(), "https://store.example/")

	assert.Equal(t, StateCustomer, sc.State())
	assert.True(t, sc.IsAuthenticated())
	assert.False(t, sc.IsAdmin())
}

func TestStartProbeFailureIsAnonymous(t *testing.T) {
	sc, _ := newTestSession(t, &fakeBackend{})

	sc.Start(context.Background(), "https://store.example/")

	assert.Equal(t, StateAnonymous, sc.State())
	assert.False(t, sc.IsAuthenticated())
}

func TestStartSkipsProbeOnCallbackURL(t *testing.T) {
	backend := &fakeBackend{meUser: &models.User{Role: models.RoleCustomer}}
	sc, _ := newTestSession(t, backend)

	sc.Start(context.Background(), "https://store.example/auth/callback#session_id=tok123")

	assert.Equal(t, 0, backend.meCalls)
	assert.Equal(t, StateAuthenticating, sc.State())
}

func TestHandleCallbackExchangesExactlyOnce(t *testing.T) {
	backend := &fakeBackend{exchangeUser: &models.User{Email: "a@b.c", Role: models.RoleCustomer}}
	sc, _ := newTestSession(t, backend)

	route := sc.HandleCallback(context.Background(), "session_id=tok123")
	assert.Equal(t, "/", route)

	// The callback view re-rendering must not spend the token again.
	route = sc.HandleCallback(context.Background(), "session_id=tok123")
	assert.Equal(t, "", route)
	assert.Equal(t, 1, backend.exchangeCalls)
	assert.Equal(t, StateCustomer, sc.State())
}

func TestHandleCallbackRoutesAdminToBackOffice(t *testing.T) {
	backend := &fakeBackend{exchangeUser: &models.User{Email: "admin@b.c", Role: models.RoleAdmin}}
	sc, _ := newTestSession(t, backend)

	route := sc.HandleCallback(context.Background(), "#session_id=tok456")
	assert.Equal(t, "/admin", route)
	assert.True(t, sc.IsAdmin())
}

func TestHandleCallbackFailureRoutesToLogin(t *testing.T) {
	backend := &fakeBackend{} // exchange answers 401
	sc, _ := newTestSession(t, backend)

	route := sc.HandleCallback(context.Background(), "session_id=expired")
	assert.Equal(t, "/login", route)
	assert.Equal(t, StateAnonymous, sc.State())

	// Still guarded: the failed token is not retried.
	assert.Equal(t, "", sc.HandleCallback(context.Background(), "session_id=expired"))
	assert.Equal(t, 1, backend.exchangeCalls)
}

func TestHandleCallbackWithoutTokenRoutesToLogin(t *testing.T) {
	backend := &fakeBackend{}
	sc, _ := newTestSession(t, backend)

	assert.Equal(t, "/login", sc.HandleCallback(context.Background(), ""))
	assert.Equal(t, 0, backend.exchangeCalls)
}

func TestLoginAdminWrongCredentials(t *testing.T) {
	sc, _ := newTestSession(t, &fakeBackend{})
	sc.Start(context.Background(), "https://store.example/")

	result := sc.LoginAdmin(context.Background(), "admin@store.com", "wrong")

	assert.False(t, result.OK)
	assert.Equal(t, "Credenciales inválidas", result.Reason)
	assert.False(t, sc.IsAuthenticated())
}

func TestLoginAdminSuccess(t *testing.T) {
	backend := &fakeBackend{adminUser: &models.User{Email: "admin@store.com", Role: models.RoleAdmin}}
	sc, _ := newTestSession(t, backend)

	result := sc.LoginAdmin(context.Background(), "admin@store.com", "secret")

	assert.True(t, result.OK)
	assert.True(t, sc.IsAdmin())
}

func TestLogoutClearsStateEvenWhenRequestFails(t *testing.T) {
	backend := &fakeBackend{meUser: &models.User{Role: models.RoleCustomer}}
	server := httptest.NewServer(backend.handler())
	api, err := NewClient(server.URL)
	require.NoError(t, err)
	sc := NewSessionController(api)
	sc.Start(context.Background(), "https://store.example/")
	require.True(t, sc.IsAuthenticated())

	// Backend gone: logout is best-effort.
	server.Close()
	sc.Logout(context.Background())

	assert.Equal(t, StateAnonymous, sc.State())
	_, ok := sc.User()
	assert.False(t, ok)
}

func TestGuardAdminRedirects(t *testing.T) {
	backend := &fakeBackend{}
	sc, _ := newTestSession(t, backend)
	sc.Start(context.Background(), "https://store.example/")
	assert.Equal(t, "/login", sc.GuardAdmin(), "anonymous goes to login")

	backend.meUser = &models.User{Role: models.RoleCustomer}
	sc, _ = newTestSession(t, backend)
	sc.Start(context.Background(), "https://store.example/")
	assert.Equal(t, "/", sc.GuardAdmin(), "non-admin goes home")

	backend.meUser = &models.User{Role: models.RoleAdmin}
	sc, _ = newTestSession(t, backend)
	sc.Start(context.Background(), "https://store.example/")
	assert.Equal(t, "", sc.GuardAdmin(), "admin is admitted")
}

func TestLoginURLCarriesRedirect(t *testing.T) {
	sc, _ := newTestSession(t, &fakeBackend{})

	url := sc.LoginURL("https://store.example/auth/callback")
	assert.Equal(t, DefaultProviderURL+"/?redirect=https%3A%2F%2Fstore.example%2Fauth%2Fcallback", url)
}
