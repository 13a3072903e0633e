package get_plugins

import (
	"net/http"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/api"
	"guildboard/dashboard"
	"guildboard/state"
	"guildboard/types"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Plugins",
		Description: "Returns every scope-matching plugin with its resolved panels. A plugin whose panel resolution fails is listed with an error message instead of failing the whole response.",
		Resp:        types.PluginList{},
		Params: []docs.Parameter{
			{
				Name:        "guildId",
				Description: "The guild to scope the plugins to, if any",
				In:          "query",
				Schema:      docs.IdSchema,
			},
		},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	dctx := api.DashContext(d.Auth)

	if dctx == nil {
		return uapi.DefaultResponse(http.StatusUnauthorized)
	}

	return uapi.HttpResponse{
		Json: types.PluginList{
			Plugins: dashboard.ResolvePlugins(d.Context, dctx, state.Hooks),
		},
	}
}
