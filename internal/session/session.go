// Package session keeps a visitor's signup identity in a signed browser
// cookie.  The identity is modelled as an explicit Context value that the
// HTTP layer obtains with Manager.Reload on every request; there is no
// package level state.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie holding the session token.
const CookieName = "swsspace_session"

// ErrNoSession is returned by Reload when the request carries no usable session.
var ErrNoSession = errors.New("no session")

// ErrInvalidSession is returned by Reload when a session cookie was sent but
// failed verification.  It wraps ErrNoSession.
var ErrInvalidSession = fmt.Errorf("invalid session: %w", ErrNoSession)

// PlanStatus tracks the membership plan of a signed up visitor.
type PlanStatus string

const (
	PlanInactive PlanStatus = "inactive"
	PlanActive   PlanStatus = "active"
	PlanExpired  PlanStatus = "expired"
)

// UserInfo is the identity captured at signup.
type UserInfo struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	SelectedPlan string     `json:"selectedPlan"`
	SignupDate   time.Time  `json:"signupDate"`
	PlanStatus   PlanStatus `json:"planStatus"`
}

// NewUserInfo normalises signup form values.  A missing first name becomes
// "User" and a fresh signup always starts with an inactive plan.
func NewUserInfo(firstName, lastName, email, phone, plan string, now time.Time) UserInfo {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		firstName = "User"
	}
	return UserInfo{
		FirstName:    firstName,
		LastName:     strings.TrimSpace(lastName),
		Email:        strings.TrimSpace(email),
		Phone:        strings.TrimSpace(phone),
		SelectedPlan: plan,
		SignupDate:   now.UTC(),
		PlanStatus:   PlanInactive,
	}
}

// Context is the session as seen by request handlers.
type Context struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"isAuthenticated"`
	User          UserInfo  `json:"user"`
	Timestamp     time.Time `json:"sessionTimestamp"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type claims struct {
	User             UserInfo `json:"user"`
	SessionTimestamp string   `json:"sessionTimestamp"`
	jwt.RegisteredClaims
}

// Manager issues, reads and clears session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewManager returns a Manager signing cookies with secret.  ttl is the
// cookie lifetime; secure marks cookies as HTTPS only.
func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

// Encode signs a session into a cookie value.
func (m *Manager) Encode(sc Context) (string, error) {
	cl := claims{
		User:             sc.User,
		SessionTimestamp: sc.Timestamp.UTC().Format(time.RFC3339),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sc.ID,
			Subject:   sc.User.Email,
			IssuedAt:  jwt.NewNumericDate(sc.Timestamp),
			ExpiresAt: jwt.NewNumericDate(sc.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(m.secret)
}

// Decode verifies a cookie value and returns the session it carries.
func (m *Manager) Decode(raw string) (Context, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return Context{}, fmt.Errorf("decode session: %w", err)
	}
	if cl.ID == "" {
		return Context{}, fmt.Errorf("decode session: missing id")
	}
	sc := Context{ID: cl.ID, Authenticated: true, User: cl.User}
	if cl.IssuedAt != nil {
		sc.Timestamp = cl.IssuedAt.Time.UTC()
	}
	if cl.ExpiresAt != nil {
		sc.ExpiresAt = cl.ExpiresAt.Time.UTC()
	}
	return sc, nil
}

// Login starts a new session for info and writes its cookie.
func (m *Manager) Login(w http.ResponseWriter, info UserInfo) (Context, error) {
	now := m.now().UTC().Truncate(time.Second)
	sc := Context{
		ID:            uuid.NewString(),
		Authenticated: true,
		User:          info,
		Timestamp:     now,
		ExpiresAt:     now.Add(m.ttl),
	}
	raw, err := m.Encode(sc)
	if err != nil {
		return Context{}, fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    raw,
		Path:     "/",
		Expires:  sc.ExpiresAt,
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sc, nil
}

// Reload reads the session from r.  A cookie that fails verification is
// cleared on w and reported as ErrNoSession.
func (m *Manager) Reload(w http.ResponseWriter, r *http.Request) (Context, error) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return Context{}, ErrNoSession
	}
	sc, err := m.Decode(ck.Value)
	if err != nil {
		m.Logout(w)
		return Context{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return sc, nil
}

// Logout expires the session cookie.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
