package lookup

import (
	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/api"
	"guildboard/routes/lookup/endpoints/lookup_channels"
	"guildboard/routes/lookup/endpoints/lookup_members"
	"guildboard/routes/lookup/endpoints/lookup_roles"
)

const tagName = "Lookup"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints back the autocomplete searches of role, channel and member fields"
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/api/lookup/roles",
		OpId:    "lookup_roles",
		Method:  uapi.GET,
		Docs:    lookup_roles.Docs,
		Handler: lookup_roles.Route,
		Auth: []uapi.AuthType{
			{
				Type: api.TargetTypeUser,
			},
		},
		ExtData: map[string]any{
			api.GUILD_CHECK_KEY: api.QueryGuildID,
		},
	}.Route(r)

	uapi.Route{
		Pattern: "/api/lookup/channels",
		OpId:    "lookup_channels",
		Method:  uapi.GET,
		Docs:    lookup_channels.Docs,
		Handler: lookup_channels.Route,
		Auth: []uapi.AuthType{
			{
				Type: api.TargetTypeUser,
			},
		},
		ExtData: map[string]any{
			api.GUILD_CHECK_KEY: api.QueryGuildID,
		},
	}.Route(r)

	uapi.Route{
		Pattern: "/api/lookup/members",
		OpId:    "lookup_members",
		Method:  uapi.GET,
		Docs:    lookup_members.Docs,
		Handler: lookup_members.Route,
		Auth: []uapi.AuthType{
			{
				Type: api.TargetTypeUser,
			},
		},
		ExtData: map[string]any{
			api.GUILD_CHECK_KEY: api.QueryGuildID,
		},
	}.Route(r)
}
