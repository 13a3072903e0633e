package guilds

import (
	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/api"
	"guildboard/routes/guilds/endpoints/get_user_guilds"
)

const tagName = "Guilds"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints list the guilds the viewer can manage"
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/api/guilds",
		OpId:    "get_user_guilds",
		Method:  uapi.GET,
		Docs:    get_user_guilds.Docs,
		Handler: get_user_guilds.Route,
		Auth: []uapi.AuthType{
			{
				Type: api.TargetTypeUser,
			},
		},
		ExtData: map[string]any{
			api.GUILD_CHECK_KEY: nil, // Guild selection does not apply to the guild list itself
		},
	}.Route(r)
}
