package execute_home_action

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
		Summary:     "Execute Home Action",
		Description: "Invokes a host-registered home action with the submitted section values. Handler errors and panics are surfaced as {ok: false} with HTTP 500, never as raw exceptions.",
		Req:         types.ActionPayload{},
		Resp:        types.ActionResult{},
		Params: []docs.Parameter{
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

	actionID := chi.URLParam(r, "action_id")

	action, ok := state.Hooks.Home.Actions[actionID]

	if !ok {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ActionResult{Ok: false, Message: "Home action not found"},
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
			Json:   types.ActionResult{Ok: false, Message: "Invalid home action payload"},
		}
	}

	// Coerce the submitted values against the owning section's field
	// types so handlers see a stable value shape
	sections, err := dashboard.Sections(
		d.Context,
		dctx,
		state.Hooks,
		state.Config.Dashboard.Name,
		state.Config.Dashboard.Path(),
	)

	if err == nil {
		for _, s := range sections {
			if s.ID == payload.SectionID {
				payload.Values = dashboard.CoerceValues(s.Fields, payload.Values)
				break
			}
		}
	}

	res, err := dashboard.Invoke(d.Context, dctx, action, &payload)

	if err != nil {
		state.Logger.Error(
			"Home action failed",
			zap.Error(err),
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
