package execute_plugin_action

import (
	"net/http"

	"github.com/go-chi/chi/v5"
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
		Summary:     "Execute Plugin Action",
		Description: "Invokes a plugin action with the submitted payload. Handler errors and panics are surfaced as {ok: false} with HTTP 500.",
		Req:         types.ActionPayload{},
		Resp:        types.ActionResult{},
		Params: []docs.Parameter{
			{
				Name:        "plugin_id",
				Description: "The ID of the plugin owning the action",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "action_id",
				Description: "The ID of the action to execute",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "guildId",
				Description: "The guild to scope the action to, if any",
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

	plugin := state.Hooks.FindPlugin(chi.URLParam(r, "plugin_id"))

	if plugin == nil {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ActionResult{Ok: false, Message: "Plugin not found"},
		}
	}

	actionID := chi.URLParam(r, "action_id")

	action, ok := plugin.Actions[actionID]

	if !ok {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ActionResult{Ok: false, Message: "Action not found"},
		}
	}

	var payload types.ActionPayload

	hresp, ok := uapi.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	if err := state.Validator.Struct(payload); err != nil || payload.Values == nil {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ActionResult{Ok: false, Message: "Invalid plugin action payload"},
		}
	}

	res, err := dashboard.Invoke(d.Context, dctx, action, &payload)

	if err != nil {
		state.Logger.Error(
			"Plugin action failed",
			zap.Error(err),
			zap.String("pluginId", plugin.ID),
			zap.String("actionId", actionID),
			zap.String("userId", d.Auth.ID),
		)

		return uapi.HttpResponse{
			Status: http.StatusInternalServerError,
			Json:   types.ActionResult{Ok: false, Message: err.Error()},
		}
	}

	return uapi.HttpResponse{
		Json: res,
	}
}
