package get_home_categories

import (
	"net/http"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"go.uber.org/zap"

	"guildboard/api"
	"guildboard/dashboard"
	"guildboard/state"
	"guildboard/types"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Home Categories",
		Description: "Returns the home tab's categories filtered to the active scope, overview first.",
		Resp:        types.CategoryList{},
		Params: []docs.Parameter{
			{
				Name:        "guildId",
				Description: "The guild to scope the categories to, if any",
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

	cats, err := dashboard.Categories(d.Context, dctx, state.Hooks)

	if err != nil {
		state.Logger.Error("Categories hook failed", zap.Error(err))
		return uapi.HttpResponse{
			Status: http.StatusInternalServerError,
			Json:   types.ApiError{Message: "Failed to resolve home categories: " + err.Error()},
		}
	}

	activeScope := dctx.Scope()

	return uapi.HttpResponse{
		Json: types.CategoryList{
			Categories:  dashboard.FilterCategories(cats, activeScope),
			ActiveScope: activeScope,
		},
	}
}
