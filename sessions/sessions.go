// Package sessions holds the server-side session model of the
// dashboard and the stores that persist it.
//
// A session moves through three states: anonymous (neither OAuthState
// nor Auth set), pending OAuth (OAuthState set at /login) and
// authenticated (Auth set at /callback, OAuthState cleared). The state
// nonce is single-use: it must compare equal to the callback's state
// query parameter exactly once and is cleared before the code exchange
// begins.
package sessions

import (
	"context"
	"net/http"
	"time"

	"guildboard/types"
)

// Auth is the authenticated half of a session: the OAuth2 tokens plus
// read-only snapshots of the viewer's identity and guild list taken at
// login. Snapshots are only invalidated by re-authentication.
type Auth struct {
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time              `json:"expires_at,omitempty"`
	User         *types.DashboardUser    `json:"user"`
	Guilds       []*types.DashboardGuild `json:"guilds"`
}

type Data struct {
	ID         string    `json:"id"`
	OAuthState string    `json:"oauth_state,omitempty"`
	Auth       *Auth     `json:"auth,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Authenticated reports whether the session holds a completed login.
func (d *Data) Authenticated() bool {
	return d != nil && d.Auth != nil
}

func (d *Data) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}

// Store persists sessions. Implementations must return (nil, nil) for
// a missing session rather than an error.
type Store interface {
	Get(ctx context.Context, id string) (*Data, error)
	Put(ctx context.Context, d *Data) error
	Delete(ctx context.Context, id string) error

	// DeleteExpired sweeps sessions past their expiry. Stores whose
	// backend expires keys natively may treat this as a no-op.
	DeleteExpired(ctx context.Context) error
}

// ReadCookie returns the session ID presented by the request, or an
// empty string.
func ReadCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)

	if err != nil || c == nil {
		return ""
	}

	return c.Value
}

// NewCookie builds the session cookie. HttpOnly+Lax keeps the cookie
// out of scripts and off cross-site subrequests; Secure is left to the
// deployment's proxy since local bot setups commonly run plain HTTP.
func NewCookie(name, value, path string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge / time.Second),
	}
}

// ExpiredCookie builds a cookie that clears the session cookie.
func ExpiredCookie(name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
