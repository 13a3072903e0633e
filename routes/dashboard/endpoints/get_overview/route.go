package get_overview

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
		Summary:     "Get Overview",
		Description: "Returns the overview statistic cards for the active scope.",
		Resp:        types.CardList{},
		Params: []docs.Parameter{
			{
				Name:        "guildId",
				Description: "The guild to scope the overview to, if any",
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

	cards, err := dashboard.OverviewCards(d.Context, dctx, state.Hooks)

	if err != nil {
		state.Logger.Error("Overview cards hook failed", zap.Error(err))
		return uapi.HttpResponse{
			Status: http.StatusInternalServerError,
			Json:   types.ApiError{Message: "Failed to resolve overview cards: " + err.Error()},
		}
	}

	return uapi.HttpResponse{
		Json: types.CardList{Cards: cards},
	}
}
