package utils

import (
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"guildboard/types"
)

const cdnBase = "https://cdn.discordapp.com"

// https://github.com/bwmarrin/discordgo/blob/master/util.go#L111
func iconURL(iconHash, staticIconURL, animatedIconURL, size string) string {
	var URL string
	if iconHash == "" {
		return ""
	} else if strings.HasPrefix(iconHash, "a_") {
		URL = animatedIconURL
	} else {
		URL = staticIconURL
	}

	if size != "" {
		return URL + "?size=" + size
	}
	return URL
}

// UserAvatarURL returns the CDN URL of a user's avatar, falling back to
// one of the six embed avatars derived from (id >> 22) % 6 when the user
// has no custom avatar.
func UserAvatarURL(u *types.DashboardUser) string {
	if u.Avatar != "" {
		return iconURL(
			u.Avatar,
			fmt.Sprintf("%s/avatars/%s/%s.png", cdnBase, u.ID, u.Avatar),
			fmt.Sprintf("%s/avatars/%s/%s.gif", cdnBase, u.ID, u.Avatar),
			"256",
		)
	}

	var id big.Int
	if _, ok := id.SetString(u.ID, 10); !ok {
		return fmt.Sprintf("%s/embed/avatars/0.png", cdnBase)
	}

	id.Rsh(&id, 22)
	id.Mod(&id, big.NewInt(6))

	return fmt.Sprintf("%s/embed/avatars/%s.png", cdnBase, id.String())
}

// GuildIconURL returns the CDN URL of a guild's icon, or an empty string
// when the guild has none.
func GuildIconURL(g *types.DashboardGuild) string {
	return iconURL(
		g.Icon,
		fmt.Sprintf("%s/icons/%s/%s.png", cdnBase, g.ID, g.Icon),
		fmt.Sprintf("%s/icons/%s/%s.gif", cdnBase, g.ID, g.Icon),
		"128",
	)
}

// BotInviteURL builds an OAuth2 authorize URL that invites the bot into
// the given guild with guild selection locked.
func BotInviteURL(clientID string, scopes []string, permissions, guildID string) string {
	if len(scopes) == 0 {
		scopes = []string{"bot", "applications.commands"}
	}

	if permissions == "" {
		permissions = "8"
	}

	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("scope", strings.Join(scopes, " "))
	q.Set("permissions", permissions)
	q.Set("guild_id", guildID)
	q.Set("disable_guild_select", "true")

	return "https://discord.com/oauth2/authorize?" + q.Encode()
}
