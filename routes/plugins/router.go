package plugins

import (
	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/api"
	"guildboard/routes/plugins/endpoints/execute_plugin_action"
	"guildboard/routes/plugins/endpoints/get_plugins"
)

const tagName = "Plugins"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints serve host-registered plugin panels and their actions"
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/api/plugins",
		OpId:    "get_plugins",
		Method:  uapi.GET,
		Docs:    get_plugins.Docs,
		Handler: get_plugins.Route,
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
		Pattern: "/api/plugins/{plugin_id}/{action_id}",
		OpId:    "execute_plugin_action",
		Method:  uapi.POST,
		Docs:    execute_plugin_action.Docs,
		Handler: execute_plugin_action.Route,
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
