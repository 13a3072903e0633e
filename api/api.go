// Binds onto eureka uapi
package api

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/constants"
	"guildboard/dashboard"
	"guildboard/sessions"
	"guildboard/state"
	"guildboard/types"
	"guildboard/utils"
)

const TargetTypeUser = "User"

// GUILD_CHECK_KEY must be present in ExtData of every gated route. The
// check re-validates the attacker-suppliable guildId against the
// viewer's manageable guilds before the handler runs.
const GUILD_CHECK_KEY = "guildCheck"

type GuildCheck struct {
	GuildID func(d uapi.Route, r *http.Request) string
}

// QueryGuildID is the GuildCheck most routes use: the guildId query
// parameter selects the guild scope.
var QueryGuildID = GuildCheck{
	GuildID: func(d uapi.Route, r *http.Request) string {
		return r.URL.Query().Get("guildId")
	},
}

type DefaultResponder struct{}

func (d DefaultResponder) New(err string, ctx map[string]string) any {
	return types.ApiError{
		Message: err,
		Context: ctx,
	}
}

// Authorizes a request
func Authorize(r uapi.Route, req *http.Request) (uapi.AuthData, uapi.HttpResponse, bool) {
	// Sweep expired sessions opportunistically, a failed sweep never
	// fails the request
	if err := state.SessionStore.DeleteExpired(state.Context); err != nil {
		state.Logger.Error("Failed to sweep expired sessions", zap.Error(err))
	}

	sess := SessionFromRequest(req)

	authData := uapi.AuthData{}

	if sess.Authenticated() {
		authData = uapi.AuthData{
			TargetType: TargetTypeUser,
			ID:         sess.Auth.User.ID,
			Authorized: true,
			Data: map[string]any{
				"session": sess,
			},
		}
	}

	if len(r.Auth) == 0 {
		return authData, uapi.HttpResponse{}, true
	}

	if !authData.Authorized && !r.AuthOptional {
		return uapi.AuthData{}, uapi.DefaultResponse(http.StatusUnauthorized), false
	}

	if authData.Authorized {
		if owners := state.Config.Dashboard.OwnerIDs; len(owners) > 0 {
			var isOwner bool

			for _, id := range owners {
				if id == authData.ID {
					isOwner = true
					break
				}
			}

			if !isOwner {
				return uapi.AuthData{}, uapi.HttpResponse{
					Status: http.StatusForbidden,
					Json:   types.ApiError{Message: "This dashboard is restricted to its configured owners"},
				}, false
			}
		}

		gc, ok := r.ExtData[GUILD_CHECK_KEY]

		if !ok {
			return uapi.AuthData{}, uapi.HttpResponse{
				Status: http.StatusInternalServerError,
				Json:   types.ApiError{Message: "Internal server error: guildCheck not found in route.ExtData"},
			}, false
		}

		guildCheck, ok := gc.(GuildCheck)

		if ok && guildCheck.GuildID != nil {
			guildId := guildCheck.GuildID(r, req)

			if guildId != "" {
				guild := utils.FindGuild(utils.ManageableGuilds(sess.Auth.Guilds), guildId)

				if guild == nil {
					return uapi.AuthData{}, uapi.HttpResponse{
						Status: http.StatusForbidden,
						Json:   types.ApiError{Message: "You do not have permission to manage this guild"},
						Headers: map[string]string{
							"X-Error-Type": "guild_check",
						},
					}, false
				}

				authData.Data["selectedGuildId"] = guildId
			}
		}
	}

	return authData, uapi.HttpResponse{}, true
}

// SessionFromRequest loads the session presented by the request's
// cookie. Never nil-unsafe: callers get nil for missing, expired or
// unreadable sessions.
func SessionFromRequest(req *http.Request) *sessions.Data {
	sessID := sessions.ReadCookie(req, state.Config.Dashboard.SessionCookie)

	if sessID == "" {
		return nil
	}

	sess, err := state.SessionStore.Get(state.Context, sessID)

	if err != nil {
		state.Logger.Error("Failed to load session", zap.Error(err))
		return nil
	}

	return sess
}

// Session returns the authenticated session attached by Authorize.
func Session(d uapi.AuthData) *sessions.Data {
	sess, ok := d.Data["session"].(*sessions.Data)

	if !ok {
		return nil
	}

	return sess
}

// SelectedGuildID returns the guildId validated by Authorize, or an
// empty string in user scope.
func SelectedGuildID(d uapi.AuthData) string {
	id, ok := d.Data["selectedGuildId"].(string)

	if !ok {
		return ""
	}

	return id
}

// DashContext assembles the per-request dashboard context from the
// authorized session.
func DashContext(d uapi.AuthData) *dashboard.Context {
	sess := Session(d)

	if sess == nil || !sess.Authenticated() {
		return nil
	}

	return &dashboard.Context{
		User:            sess.Auth.User,
		Guilds:          sess.Auth.Guilds,
		AccessToken:     sess.Auth.AccessToken,
		SelectedGuildID: SelectedGuildID(d),
		Helpers:         state.Helpers,
	}
}

func Setup() {
	uapi.SetupState(uapi.UAPIState{
		Logger:    state.Logger,
		Authorize: Authorize,
		AuthTypeMap: map[string]string{
			TargetTypeUser: TargetTypeUser,
		},
		Context: state.Context,
		Constants: &uapi.UAPIConstants{
			ResourceNotFound:    constants.ResourceNotFound,
			BadRequest:          constants.BadRequest,
			Forbidden:           constants.Forbidden,
			Unauthorized:        constants.Unauthorized,
			InternalServerError: constants.InternalServerError,
			MethodNotAllowed:    constants.MethodNotAllowed,
			BodyRequired:        constants.BodyRequired,
		},
		DefaultResponder: DefaultResponder{},
		BaseSanityCheck: func(r uapi.Route) error {
			if len(r.Auth) > 0 {
				if _, ok := r.ExtData[GUILD_CHECK_KEY]; !ok {
					return fmt.Errorf("%s not found in route.ExtData [%s]", GUILD_CHECK_KEY, r.OpId)
				}
			}

			return nil
		},
	})
}
