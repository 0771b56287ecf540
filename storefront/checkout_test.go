package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lumina-co/jewelry-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeOrderMessage(t *testing.T) {
	info := CustomerInfo{
		Name:    "María Pérez",
		Phone:   "8888-8888",
		Email:   "maria@example.com",
		Address: "Managua, frente al parque",
		Notes:   "Entregar por la tarde",
	}
	lines := []CartLine{
		{ProductID: "p1", Name: "Anillo", Price: 120, Quantity: 2},
		{ProductID: "p2", Name: "Aretes", Price: 45, Quantity: 1},
	}

	msg := ComposeOrderMessage(info, lines, 285)

	assert.Contains(t, msg, "*Cliente:* María Pérez")
	assert.Contains(t, msg, "*Teléfono:* 8888-8888")
	assert.Contains(t, msg, "*Email:* maria@example.com")
	assert.Contains(t, msg, "*Dirección:* Managua, frente al parque")
	assert.Contains(t, msg, "• Anillo x2 - C$240")
	assert.Contains(t, msg, "• Aretes x1 - C$45")
	assert.Contains(t, msg, "*Total:* C$285")
	assert.Contains(t, msg, "*Notas:* Entregar por la tarde")
}

func TestComposeOrderMessageOmitsEmptyOptionalFields(t *testing.T) {
	info := CustomerInfo{Name: "Juan", Phone: "8888", Address: "León"}
	msg := ComposeOrderMessage(info, nil, 0)

	assert.NotContains(t, msg, "*Email:*")
	assert.NotContains(t, msg, "*Notas:*")
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("0050581171182", "¡Hola! pedido & más")

	require.True(t, strings.HasPrefix(link, "https://wa.me/50581171182?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "¡Hola! pedido & más", u.Query().Get("text"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "50589953348", normalizePhone("+505 8995-3348"))
	assert.Equal(t, "50581171182", normalizePhone("0050581171182"))
	assert.Equal(t, "89953348", normalizePhone("8995 3348"))
}

func TestCustomerInfoValidate(t *testing.T) {
	valid := CustomerInfo{Name: "Ana", Phone: "8888", Address: "Granada"}
	assert.NoError(t, valid.Validate())

	for _, info := range []CustomerInfo{
		{Phone: "8888", Address: "Granada"},
		{Name: "Ana", Address: "Granada"},
		{Name: "Ana", Phone: "8888"},
		{Name: "  ", Phone: "8888", Address: "Granada"},
	} {
		assert.ErrorIs(t, info.Validate(), ErrMissingFields)
	}
}

func TestCheckoutPersistsOrderThenClearsCart(t *testing.T) {
	var received OrderDraft
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: "o1"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	api, err := NewClient(server.URL)
	require.NoError(t, err)

	cart := NewCartStore(NewFileCartStorage(filepath.Join(t.TempDir(), "cart.json")))
	cart.AddItem(testProduct("p1", "Anillo", 120), 2)

	info := CustomerInfo{Name: "Ana", Phone: "8888", Address: "Granada"}
	link, err := Checkout(context.Background(), api, cart, info, "89953348")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/89953348?text="))
	assert.Equal(t, "Ana", received.CustomerName)
	assert.Equal(t, 240.0, received.Total)
	require.Len(t, received.Items, 1)
	assert.Equal(t, "p1", received.Items[0].ProductID)
	assert.Equal(t, 0, cart.ItemCount(), "cart clears after submission")
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusInternalServerError, "Failed to create order")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	api, err := NewClient(server.URL)
	require.NoError(t, err)

	cart := NewCartStore(NewFileCartStorage(filepath.Join(t.TempDir(), "cart.json")))
	cart.AddItem(testProduct("p1", "Anillo", 120), 2)

	info := CustomerInfo{Name: "Ana", Phone: "8888", Address: "Granada"}
	_, err = Checkout(context.Background(), api, cart, info, "89953348")
	require.Error(t, err)
	assert.Equal(t, 2, cart.ItemCount(), "no optimistic clear on failure")
}

func TestCheckoutValidatesBeforeNetwork(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	api, err := NewClient(server.URL)
	require.NoError(t, err)

	cart := NewCartStore(NewFileCartStorage(filepath.Join(t.TempDir(), "cart.json")))
	cart.AddItem(testProduct("p1", "Anillo", 120), 1)

	_, err = Checkout(context.Background(), api, cart, CustomerInfo{}, "89953348")
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.False(t, called, "validation failures issue no network call")
}
