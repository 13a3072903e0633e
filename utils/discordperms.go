package utils

import (
	"github.com/bwmarrin/discordgo"

	"guildboard/types"
)

// IsManageable checks whether the viewer may administer a guild: either
// they own it, or their permission bitfield carries ADMINISTRATOR or
// MANAGE_GUILD. This is the hard authorization boundary of the
// dashboard; guild-scoped data must never be served for a guild that
// fails this check.
func IsManageable(g *types.DashboardGuild) bool {
	if g.Owner {
		return true
	}

	return g.Permissions.HasBit(discordgo.PermissionAdministrator) || g.Permissions.HasBit(discordgo.PermissionManageServer)
}

// ManageableGuilds filters a viewer's guild list down to the guilds they
// may administer.
func ManageableGuilds(guilds []*types.DashboardGuild) []*types.DashboardGuild {
	var out []*types.DashboardGuild

	for _, g := range guilds {
		if IsManageable(g) {
			out = append(out, g)
		}
	}

	return out
}

// FindGuild returns the guild with the given ID, or nil.
func FindGuild(guilds []*types.DashboardGuild, id string) *types.DashboardGuild {
	for _, g := range guilds {
		if g.ID == id {
			return g
		}
	}

	return nil
}
