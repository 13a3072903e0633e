package lookup_roles

import (
	"net/http"
	"strconv"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"go.uber.org/zap"

	"guildboard/api"
	"guildboard/state"
	"guildboard/types"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Lookup Roles",
		Description: "Searches a guild's roles by name for role-search autocomplete fields. Managed roles are excluded unless includeManaged is true.",
		Resp:        types.RoleList{},
		Params: []docs.Parameter{
			{
				Name:        "guildId",
				Description: "The guild to search in",
				Required:    true,
				In:          "query",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "q",
				Description: "Case-insensitive name substring to match",
				In:          "query",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "limit",
				Description: "Maximum number of results (1-50, default 25)",
				In:          "query",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "includeManaged",
				Description: "Include integration-managed roles",
				In:          "query",
				Schema:      docs.IdSchema,
			},
		},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	guildId := api.SelectedGuildID(d.Auth)

	if guildId == "" {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "guildId is required"},
		}
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	roles, err := state.Helpers.SearchRoles(
		guildId,
		r.URL.Query().Get("q"),
		limit,
		r.URL.Query().Get("includeManaged") == "true",
	)

	if err != nil {
		state.Logger.Error("Role lookup failed", zap.Error(err), zap.String("guildId", guildId))
		return uapi.HttpResponse{
			Status: http.StatusInternalServerError,
			Json:   types.ApiError{Message: "Failed to fetch guild roles: " + err.Error()},
		}
	}

	return uapi.HttpResponse{
		Json: types.RoleList{Roles: roles},
	}
}
