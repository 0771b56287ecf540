package storefront

import (
	"context"
	"errors"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/lumina-co/jewelry-api/models"
)

// DefaultProviderURL is the external identity provider's login page.
const DefaultProviderURL = "https://auth.emergentagent.com"

type SessionState int

const (
	// StateAuthenticating covers the startup probe and a pending callback
	// exchange; route guards hold off until it resolves.
	StateAuthenticating SessionState = iota
	StateAnonymous
	StateCustomer
	StateAdmin
)

func (s SessionState) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAnonymous:
		return "anonymous"
	case StateCustomer:
		return "customer"
	case StateAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// The callback exchange is a one-way idle → exchanging → done transition;
// the phase itself is the re-entrancy guard, so a re-rendered callback view
// can never spend the one-time token twice.
type exchangePhase int

const (
	exchangeIdle exchangePhase = iota
	exchangeInFlight
	exchangeDone
)

var sessionIDPattern = regexp.MustCompile(`session_id=([^&]+)`)

// LoginResult is what the admin login form renders: never an error to
// throw, always a reason to show inline.
type LoginResult struct {
	OK     bool
	Reason string
}

// SessionController tracks the current identity and mediates the three
// login paths. Like the cart, it lives on the UI event loop and is not
// safe for concurrent use.
type SessionController struct {
	api         *Client
	providerURL string
	state       SessionState
	user        models.User
	exchange    exchangePhase
}

func NewSessionController(api *Client) *SessionController {
	return &SessionController{
		api:         api,
		providerURL: DefaultProviderURL,
		state:       StateAuthenticating,
	}
}

// HasCallbackToken reports whether a URL fragment carries the one-time
// session token the provider appends after login.
func HasCallbackToken(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(u.Fragment, "session_id=")
}

// Start resolves the initial identity. When the current URL is an OAuth
// callback the probe is skipped: the callback exchange will establish the
// session, and probing first would race it.
func (sc *SessionController) Start(ctx context.Context, currentURL string) {
	if HasCallbackToken(currentURL) {
		return
	}
	user, err := sc.api.Me(ctx)
	if err != nil {
		sc.setAnonymous()
		return
	}
	sc.setUser(user)
}

// LoginURL builds the provider redirect for the external login path. No
// local state changes; navigation interrupts the session.
func (sc *SessionController) LoginURL(callbackURL string) string {
	return sc.providerURL + "/?redirect=" + url.QueryEscape(callbackURL)
}

// HandleCallback consumes the one-time token from the callback URL fragment
// and returns the route to navigate to: /admin or / on success, /login on
// failure. A duplicate invocation (the callback view mounting twice) returns
// "" and performs no exchange.
func (sc *SessionController) HandleCallback(ctx context.Context, fragment string) string {
	if sc.exchange != exchangeIdle {
		return ""
	}

	match := sessionIDPattern.FindStringSubmatch(fragment)
	if match == nil {
		sc.exchange = exchangeDone
		sc.setAnonymous()
		return "/login"
	}

	sc.exchange = exchangeInFlight
	user, err := sc.api.ExchangeSession(ctx, match[1])
	// The token is spent either way; done is terminal.
	sc.exchange = exchangeDone

	if err != nil {
		log.Printf("❌ Session exchange failed: %v", err)
		sc.setAnonymous()
		return "/login"
	}

	sc.setUser(user)
	if sc.state == StateAdmin {
		return "/admin"
	}
	return "/"
}

// LoginAdmin posts the local admin credentials. Failures come back as a
// result value with the backend's human-readable reason.
func (sc *SessionController) LoginAdmin(ctx context.Context, email, password string) LoginResult {
	user, err := sc.api.AdminLogin(ctx, email, password)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			return LoginResult{Reason: apiErr.Detail}
		}
		return LoginResult{Reason: "Error de autenticación"}
	}
	sc.setUser(user)
	return LoginResult{OK: true}
}

// Logout posts the logout best-effort and always clears local state.
func (sc *SessionController) Logout(ctx context.Context) {
	if err := sc.api.Logout(ctx); err != nil {
		log.Printf("❌ Logout request failed: %v", err)
	}
	sc.setAnonymous()
}

// User returns the current identity, if authenticated.
func (sc *SessionController) User() (models.User, bool) {
	if sc.state == StateCustomer || sc.state == StateAdmin {
		return sc.user, true
	}
	return models.User{}, false
}

func (sc *SessionController) State() SessionState { return sc.state }

func (sc *SessionController) IsAuthenticated() bool {
	return sc.state == StateCustomer || sc.state == StateAdmin
}

func (sc *SessionController) IsAdmin() bool {
	return sc.state == StateAdmin
}

// GuardAdmin is the admin route guard decision: "" admits, otherwise the
// caller redirects to the returned route.
func (sc *SessionController) GuardAdmin() string {
	if !sc.IsAuthenticated() {
		return "/login"
	}
	if !sc.IsAdmin() {
		return "/"
	}
	return ""
}

func (sc *SessionController) setUser(user models.User) {
	sc.user = user
	if user.Role == models.RoleAdmin {
		sc.state = StateAdmin
	} else {
		sc.state = StateCustomer
	}
}

func (sc *SessionController) setAnonymous() {
	sc.user = models.User{}
	sc.state = StateAnonymous
}
