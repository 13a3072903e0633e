package lookup_channels

import (
	"net/http"
	"strconv"
	"strings"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"go.uber.org/zap"

	"guildboard/api"
	"guildboard/state"
	"guildboard/types"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Lookup Channels",
		Description: "Searches a guild's channels by name for channel-search autocomplete fields, optionally filtered by NSFW flag and channel type.",
		Resp:        types.ChannelList{},
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
				Name:        "nsfw",
				Description: "When given, only channels whose NSFW flag matches",
				In:          "query",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "channelTypes",
				Description: "Comma-separated list of Discord channel type numbers to allow",
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

	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))

	var nsfw *bool

	if v := q.Get("nsfw"); v != "" {
		b := v == "true"
		nsfw = &b
	}

	var channelTypes []int

	if v := q.Get("channelTypes"); v != "" {
		for _, part := range strings.Split(v, ",") {
			ct, err := strconv.Atoi(strings.TrimSpace(part))

			if err != nil {
				continue
			}

			channelTypes = append(channelTypes, ct)
		}
	}

	channels, err := state.Helpers.SearchChannels(guildId, q.Get("q"), limit, nsfw, channelTypes)

	if err != nil {
		state.Logger.Error("Channel lookup failed", zap.Error(err), zap.String("guildId", guildId))
		return uapi.HttpResponse{
			Status: http.StatusInternalServerError,
			Json:   types.ApiError{Message: "Failed to fetch guild channels: " + err.Error()},
		}
	}

	return uapi.HttpResponse{
		Json: types.ChannelList{Channels: channels},
	}
}
