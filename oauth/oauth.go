// Package oauth implements the Discord OAuth2 authorization code flow
// and the bearer-token profile fetches that follow it.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/infinitybotlist/eureka/jsonimpl"
	"golang.org/x/oauth2"

	"guildboard/config"
	"guildboard/types"
)

// TokenExchangeError is returned when Discord's token endpoint answers
// non-2xx. It carries the upstream status and body for diagnostics.
type TokenExchangeError struct {
	StatusCode int
	Body       string
}

func (e *TokenExchangeError) Error() string {
	return fmt.Sprintf("token exchange failed: %d %s", e.StatusCode, e.Body)
}

// UpstreamFetchError is returned when a Discord REST call answers
// non-2xx.
type UpstreamFetchError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("discord api request to %s failed: %d %s", e.Endpoint, e.StatusCode, e.Body)
}

type Engine struct {
	cfg      *oauth2.Config
	apiBase  string
	botToken string
	client   *http.Client
}

func New(c *config.Config) *Engine {
	base := strings.TrimSuffix(c.Meta.DiscordAPI, "/")

	return &Engine{
		cfg: &oauth2.Config{
			ClientID:     c.DiscordAuth.ClientID,
			ClientSecret: c.DiscordAuth.ClientSecret,
			RedirectURL:  c.DiscordAuth.RedirectURI,
			Scopes:       c.DiscordAuth.OAuthScopes(),
			Endpoint: oauth2.Endpoint{
				// The authorize URL is browser-facing and always points at
				// discord.com; only server-side calls go through the
				// configured API base.
				AuthURL:   "https://discord.com/oauth2/authorize",
				TokenURL:  base + "/oauth2/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBase:  base,
		botToken: c.DiscordAuth.Token,
		client: &http.Client{
			Timeout: c.Meta.Timeout(),
		},
	}
}

// AuthCodeURL builds the Discord authorize URL for the given state
// nonce. Pure construction, no side effects.
func (e *Engine) AuthCodeURL(state string) string {
	return e.cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "none"))
}

// Exchange swaps an authorization code for a token set. No retries: a
// failed exchange is terminal for the request.
func (e *Engine) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.client)

	tok, err := e.cfg.Exchange(ctx, code)

	if err != nil {
		var re *oauth2.RetrieveError

		if errors.As(err, &re) {
			status := 0
			if re.Response != nil {
				status = re.Response.StatusCode
			}

			return nil, &TokenExchangeError{
				StatusCode: status,
				Body:       string(re.Body),
			}
		}

		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	return tok, nil
}

func (e *Engine) get(ctx context.Context, path, authHeader string, v any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", e.apiBase+path, nil)

	if err != nil {
		return err
	}

	req.Header.Set("Authorization", authHeader)
	req.Header.Set("User-Agent", "guildboard (https://github.com/infinitybotlist/guildboard)")

	resp, err := e.client.Do(req)

	if err != nil {
		return &UpstreamFetchError{Endpoint: path, Body: err.Error()}
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return &UpstreamFetchError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return jsonimpl.UnmarshalReader(resp.Body, v)
}

// FetchUser fetches /users/@me with the viewer's bearer token.
func (e *Engine) FetchUser(ctx context.Context, accessToken string) (*types.DashboardUser, error) {
	var user types.DashboardUser

	if err := e.get(ctx, "/users/@me", "Bearer "+accessToken, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// FetchGuilds fetches /users/@me/guilds with the viewer's bearer token.
func (e *Engine) FetchGuilds(ctx context.Context, accessToken string) ([]*types.DashboardGuild, error) {
	var guilds []*types.DashboardGuild

	if err := e.get(ctx, "/users/@me/guilds", "Bearer "+accessToken, &guilds); err != nil {
		return nil, err
	}

	return guilds, nil
}

// FetchBotGuildIDs fetches the set of guild IDs the bot itself is in.
// Best-effort: it only feeds the invite-button affordance, so failures
// degrade to an empty set instead of failing the caller's request.
func (e *Engine) FetchBotGuildIDs(ctx context.Context) map[string]struct{} {
	ids := map[string]struct{}{}

	var guilds []*types.DashboardGuild

	if err := e.get(ctx, "/users/@me/guilds", "Bot "+e.botToken, &guilds); err != nil {
		return ids
	}

	for _, g := range guilds {
		ids[g.ID] = struct{}{}
	}

	return ids
}

// TokenExpiry converts a token's expiry into the wire representation,
// or nil when Discord did not send expires_in.
func TokenExpiry(tok *oauth2.Token) *time.Time {
	if tok.Expiry.IsZero() {
		return nil
	}

	t := tok.Expiry
	return &t
}
