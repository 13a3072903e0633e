package get_shell

import (
	"net/http"
	"strings"

	_ "embed"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/api"
	"guildboard/state"
	"guildboard/types"
)

//go:embed shell.html
var shellHTML string

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Shell",
		Description: "Serves the embedded HTML shell that renders the dashboard from the JSON APIs. Anonymous viewers are redirected to /login.",
		Resp:        types.ApiError{},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	sess := api.SessionFromRequest(r)

	if !sess.Authenticated() {
		return uapi.HttpResponse{
			Status:   http.StatusFound,
			Redirect: state.Config.Dashboard.Path() + "/login",
		}
	}

	page := strings.NewReplacer(
		"__BASE_PATH__", state.Config.Dashboard.Path(),
		"__DASHBOARD_NAME__", state.Config.Dashboard.Name,
	).Replace(shellHTML)

	return uapi.HttpResponse{
		Bytes: []byte(page),
		Headers: map[string]string{
			"Content-Type":  "text/html; charset=utf-8",
			"Cache-Control": "no-store",
		},
	}
}
