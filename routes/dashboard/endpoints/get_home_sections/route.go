package get_home_sections

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
		Summary:     "Get Home Sections",
		Description: "Returns the home tab's sections filtered to the active scope and, when categoryId is given, to one category.",
		Resp:        types.SectionList{},
		Params: []docs.Parameter{
			{
				Name:        "guildId",
				Description: "The guild to scope the sections to, if any",
				In:          "query",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "categoryId",
				Description: "Restrict the sections to one category",
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

	sections, err := dashboard.Sections(
		d.Context,
		dctx,
		state.Hooks,
		state.Config.Dashboard.Name,
		state.Config.Dashboard.Path(),
	)

	if err != nil {
		state.Logger.Error("Sections hook failed", zap.Error(err))
		return uapi.HttpResponse{
			Status: http.StatusInternalServerError,
			Json:   types.ApiError{Message: "Failed to resolve home sections: " + err.Error()},
		}
	}

	activeScope := dctx.Scope()

	return uapi.HttpResponse{
		Json: types.SectionList{
			Sections:    dashboard.FilterSections(sections, activeScope, r.URL.Query().Get("categoryId")),
			ActiveScope: activeScope,
		},
	}
}
