package config

import (
	"strings"
	"time"
)

type Config struct {
	DiscordAuth DiscordAuth `yaml:"discord_auth" validate:"required"`
	Dashboard   Dashboard   `yaml:"dashboard" validate:"required"`
	Meta        Meta        `yaml:"meta" validate:"required"`
}

type DiscordAuth struct {
	Token        string   `yaml:"token" comment:"Discord bot token" validate:"required"`
	ClientID     string   `yaml:"client_id" comment:"Discord application client ID" validate:"required"`
	ClientSecret string   `yaml:"client_secret" comment:"Discord application client secret" validate:"required"`
	RedirectURI  string   `yaml:"redirect_uri" default:"http://localhost:8081/dashboard/callback" comment:"OAuth2 redirect URI, must match the application settings" validate:"required,httporhttps"`
	Scopes       []string `yaml:"scopes" default:"identify,guilds" comment:"OAuth2 scopes requested at login"`
}

type Dashboard struct {
	Name                 string   `yaml:"name" default:"Discord Dashboard" comment:"Display name of the dashboard"`
	BasePath             string   `yaml:"base_path" default:"/dashboard" comment:"Path prefix the dashboard is mounted under"`
	SessionCookie        string   `yaml:"session_cookie" default:"guildboard_session" comment:"Name of the session cookie"`
	SessionMaxAge        int      `yaml:"session_max_age" default:"604800" comment:"Session lifetime in seconds" validate:"required"`
	OwnerIDs             []string `yaml:"owner_ids" comment:"If set, only these user IDs may use the dashboard"`
	BotInvitePermissions string   `yaml:"bot_invite_permissions" default:"8" comment:"Permission bitfield requested when inviting the bot"`
	BotInviteScopes      []string `yaml:"bot_invite_scopes" default:"bot,applications.commands" comment:"OAuth2 scopes of the bot invite URL"`
}

type Meta struct {
	Port           int    `yaml:"port" default:"8081" comment:"Port to run the server on" validate:"required"`
	DiscordAPI     string `yaml:"discord_api" default:"https://discord.com/api/v10" comment:"Discord API base URL (or a local proxy in front of it)" validate:"required"`
	RedisURL       string `yaml:"redis_url" comment:"Redis URL for the session store. Sessions are kept in memory when unset"`
	RequestTimeout int    `yaml:"request_timeout" default:"10" comment:"Timeout for outbound Discord API calls, in seconds" validate:"required"`
}

// Path normalizes the configured base path: empty or "/" becomes
// /dashboard, anything else is guaranteed a leading slash and no
// trailing one.
func (d *Dashboard) Path() string {
	p := strings.TrimSuffix(d.BasePath, "/")

	if p == "" {
		return "/dashboard"
	}

	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}

	return p
}

// OAuthScopes returns the configured login scopes, defaulting to
// identify+guilds. The identify scope is always present as the session
// model depends on it.
func (d *DiscordAuth) OAuthScopes() []string {
	if len(d.Scopes) == 0 {
		return []string{"identify", "guilds"}
	}

	for _, s := range d.Scopes {
		if s == "identify" {
			return d.Scopes
		}
	}

	return append([]string{"identify"}, d.Scopes...)
}

func (d *Dashboard) SessionLifetime() time.Duration {
	if d.SessionMaxAge <= 0 {
		return 7 * 24 * time.Hour
	}

	return time.Duration(d.SessionMaxAge) * time.Second
}

func (m *Meta) Timeout() time.Duration {
	if m.RequestTimeout <= 0 {
		return 10 * time.Second
	}

	return time.Duration(m.RequestTimeout) * time.Second
}
