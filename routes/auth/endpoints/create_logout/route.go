package create_logout

import (
	"net/http"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"go.uber.org/zap"

	"guildboard/sessions"
	"guildboard/state"
	"guildboard/types"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Create Logout",
		Description: "Destroys the viewer's session and expires the session cookie. Safe to call without a session.",
		Resp:        types.ActionResult{},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	sessID := sessions.ReadCookie(r, state.Config.Dashboard.SessionCookie)

	if sessID != "" {
		if err := state.SessionStore.Delete(d.Context, sessID); err != nil {
			state.Logger.Error("Failed to delete session on logout", zap.Error(err))
			return uapi.DefaultResponse(http.StatusInternalServerError)
		}
	}

	cookie := sessions.ExpiredCookie(
		state.Config.Dashboard.SessionCookie,
		state.Config.Dashboard.Path(),
	)

	return uapi.HttpResponse{
		Json: types.ActionResult{Ok: true},
		Headers: map[string]string{
			"Set-Cookie": cookie.String(),
		},
	}
}
