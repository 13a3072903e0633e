package get_user_guilds

import (
	"net/http"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"go.uber.org/zap"

	"guildboard/api"
	"guildboard/state"
	"guildboard/types"
	"guildboard/utils"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get User Guilds",
		Description: "Returns the guilds the viewer can manage (owner, ADMINISTRATOR or MANAGE_GUILD), enriched with icon URLs, bot presence and an invite URL for guilds the bot is not yet in.",
		Resp:        types.GuildList{},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	dctx := api.DashContext(d.Auth)

	if dctx == nil {
		return uapi.DefaultResponse(http.StatusUnauthorized)
	}

	botGuilds := state.OAuth.FetchBotGuildIDs(d.Context)

	manageable := utils.ManageableGuilds(dctx.Guilds)
	out := make([]*types.DashboardGuild, 0, len(manageable))

	for _, g := range manageable {
		if state.Hooks.GuildFilter != nil {
			allowed, err := state.Hooks.GuildFilter(d.Context, dctx, g)

			if err != nil {
				state.Logger.Error("Guild filter hook failed", zap.Error(err), zap.String("guildId", g.ID))
				continue
			}

			if !allowed {
				continue
			}
		}

		// Enrich a copy, the session snapshot stays untouched
		cp := *g
		cp.IconURL = utils.GuildIconURL(g)

		if _, ok := botGuilds[g.ID]; ok {
			cp.BotInGuild = true
		} else {
			cp.InviteURL = utils.BotInviteURL(
				state.Config.DiscordAuth.ClientID,
				state.Config.Dashboard.BotInviteScopes,
				state.Config.Dashboard.BotInvitePermissions,
				g.ID,
			)
		}

		out = append(out, &cp)
	}

	return uapi.HttpResponse{
		Json: types.GuildList{Guilds: out},
	}
}
