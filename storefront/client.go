// Package storefront is the headless client for the Lumina & Co. API: the
// shopping cart, the session/auth state machine, and the WhatsApp checkout
// composer that the web UI drives.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/lumina-co/jewelry-api/models"
)

// Client talks to the /api surface. Authenticated calls ride on the session
// cookie held in the jar, mirroring the browser's credentialed requests.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

// APIError carries the backend's human-readable failure detail.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else {
			apiErr.Detail = payload.Err
		}
	}
	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// ---- Auth ----

func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}

func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/auth/session", map[string]string{"session_id": sessionID}, &user)
	return user, err
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/admin-login", body, &user)
	return user, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// ---- Catalog ----

// ProductQuery narrows the catalog listing. Zero value lists everything.
type ProductQuery struct {
	Category string
	Featured *bool
}

func (c *Client) Products(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Featured != nil {
		params.Set("featured", fmt.Sprintf("%t", *q.Featured))
	}
	path := "/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var products []models.Product
	err := c.do(ctx, http.MethodGet, path, nil, &products)
	return products, err
}

func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodGet, "/products/"+id, nil, &product)
	return product, err
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) Settings(ctx context.Context) (models.StoreSettings, error) {
	var settings models.StoreSettings
	err := c.do(ctx, http.MethodGet, "/settings", nil, &settings)
	return settings, err
}

// Seed loads demo data on an empty backend. Called opportunistically on
// home-page load; already-seeded is a success.
func (c *Client) Seed(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/seed", nil, nil)
}

// ---- Orders ----

// OrderDraft is the checkout payload.
type OrderDraft struct {
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerEmail   string     `json:"customer_email,omitempty"`
	CustomerAddress string     `json:"customer_address"`
	Items           []CartLine `json:"items"`
	Total           float64    `json:"total"`
	Notes           string     `json:"notes,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodPost, "/orders", draft, &order)
	return order, err
}

func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := c.do(ctx, http.MethodGet, "/orders/my-history", nil, &orders)
	return orders, err
}
