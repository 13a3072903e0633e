package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/api"
	"guildboard/routes/dashboard/endpoints/execute_home_action"
	"guildboard/routes/dashboard/endpoints/get_home_categories"
	"guildboard/routes/dashboard/endpoints/get_home_sections"
	"guildboard/routes/dashboard/endpoints/get_overview"
)

const tagName = "Dashboard"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints serve the overview cards and the home tab's categories, sections and actions"
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/api/overview",
		OpId:    "get_overview",
		Method:  uapi.GET,
		Docs:    get_overview.Docs,
		Handler: get_overview.Route,
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
		Pattern: "/api/home/categories",
		OpId:    "get_home_categories",
		Method:  uapi.GET,
		Docs:    get_home_categories.Docs,
		Handler: get_home_categories.Route,
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
		Pattern: "/api/home",
		OpId:    "get_home_sections",
		Method:  uapi.GET,
		Docs:    get_home_sections.Docs,
		Handler: get_home_sections.Route,
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
		Pattern: "/api/home/{action_id}",
		OpId:    "execute_home_action",
		Method:  uapi.POST,
		Docs:    execute_home_action.Docs,
		Handler: execute_home_action.Route,
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
