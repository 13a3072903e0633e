package get_session

import (
	"net/http"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/api"
	"guildboard/types"
	"guildboard/utils"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Session",
		Description: "Returns the viewer's login state. Always answers 200, with authenticated false for anonymous viewers, so clients can poll it without error handling.",
		Resp:        types.SessionInfo{},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	sess := api.SessionFromRequest(r)

	if !sess.Authenticated() {
		return uapi.HttpResponse{
			Json: types.SessionInfo{Authenticated: false},
		}
	}

	info := types.SessionInfo{
		Authenticated: true,
		User:          sess.Auth.User,
		GuildCount:    len(utils.ManageableGuilds(sess.Auth.Guilds)),
	}

	if sess.Auth.ExpiresAt != nil {
		millis := sess.Auth.ExpiresAt.UnixMilli()
		info.ExpiresAt = &millis
	}

	return uapi.HttpResponse{
		Json: info,
	}
}
