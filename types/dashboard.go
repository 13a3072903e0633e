package types

import (
	"guildboard/bigint"
)

// DashboardUser is an immutable snapshot of /users/@me taken at login.
// It is not refreshed until the viewer logs in again.
type DashboardUser struct {
	ID            string `json:"id" description:"The ID of the user"`
	Username      string `json:"username" description:"The username of the user"`
	Discriminator string `json:"discriminator" description:"The discriminator of the user ('0' on pomelo'd accounts)"`
	Avatar        string `json:"avatar" description:"The avatar hash of the user, if any"`
	GlobalName    string `json:"global_name,omitempty" description:"The display name of the user, if any"`
	AvatarURL     string `json:"avatarUrl,omitempty" description:"Derived CDN URL of the user's avatar"`
}

// DisplayName returns the name the dashboard should show for the user.
func (u *DashboardUser) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}

	return u.Username
}

// DashboardGuild is one entry of /users/@me/guilds. Permissions is kept
// as an unbounded integer as Discord permission bitfields exceed the
// 53-bit safe-integer range of JSON clients.
type DashboardGuild struct {
	ID          string        `json:"id" description:"The ID of the guild"`
	Name        string        `json:"name" description:"The name of the guild"`
	Icon        string        `json:"icon" description:"The icon hash of the guild, if any"`
	Owner       bool          `json:"owner" description:"Whether the viewer owns the guild"`
	Permissions bigint.BigInt `json:"permissions" description:"The viewer's permission bitfield in the guild, as a decimal string"`
	IconURL     string        `json:"iconUrl,omitempty" description:"Derived CDN URL of the guild icon"`
	BotInGuild  bool          `json:"botInGuild" description:"Whether the bot is present in the guild"`
	InviteURL   string        `json:"inviteUrl,omitempty" description:"Bot invite URL, set only when the bot is absent"`
}

type GuildList struct {
	Guilds []*DashboardGuild `json:"guilds" description:"The guilds the viewer can manage"`
}

type CardIntent string

const (
	CardIntentNeutral CardIntent = "neutral"
	CardIntentSuccess CardIntent = "success"
	CardIntentWarning CardIntent = "warning"
	CardIntentDanger  CardIntent = "danger"
	CardIntentInfo    CardIntent = "info"
)

type CardTrend struct {
	Value     string `json:"value" description:"Trend label, e.g. '+4%'"`
	Direction string `json:"direction" description:"One of up, down, flat"`
}

// Card is a single overview statistic box.
type Card struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Value    any        `json:"value" description:"String or number to display"`
	Subtitle string     `json:"subtitle,omitempty"`
	Intent   CardIntent `json:"intent,omitempty"`
	Trend    *CardTrend `json:"trend,omitempty"`
}

type CardList struct {
	Cards []*Card `json:"cards"`
}

type SessionInfo struct {
	Authenticated bool           `json:"authenticated"`
	User          *DashboardUser `json:"user,omitempty"`
	GuildCount    int            `json:"guildCount,omitempty" description:"Number of guilds the viewer can manage"`
	ExpiresAt     *int64         `json:"expiresAt,omitempty" description:"Unix millis at which the access token expires, if known"`
}
