package lookup_members

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
		Summary:     "Lookup Members",
		Description: "Searches a guild's members by username or nickname for member-search autocomplete fields, via Discord's member search endpoint.",
		Resp:        types.MemberList{},
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
				Description: "Username or nickname prefix to match",
				In:          "query",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "limit",
				Description: "Maximum number of results (1-1000, default 25)",
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

	members, err := state.Helpers.SearchMembers(guildId, r.URL.Query().Get("q"), limit)

	if err != nil {
		state.Logger.Error("Member lookup failed", zap.Error(err), zap.String("guildId", guildId))
		return uapi.HttpResponse{
			Status: http.StatusInternalServerError,
			Json:   types.ApiError{Message: "Failed to search guild members: " + err.Error()},
		}
	}

	return uapi.HttpResponse{
		Json: types.MemberList{Members: members},
	}
}
