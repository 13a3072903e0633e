package auth_callback

import (
	"errors"
	"net/http"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"go.uber.org/zap"

	"guildboard/api"
	"guildboard/oauth"
	"guildboard/sessions"
	"guildboard/state"
	"guildboard/types"
	"guildboard/utils"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Auth Callback",
		Description: "Completes the OAuth2 login flow: verifies the single-use state nonce, exchanges the code for tokens, snapshots the viewer's profile and guilds into the session and redirects back to the dashboard.",
		Resp:        types.ApiError{},
		Params: []docs.Parameter{
			{
				Name:        "code",
				Description: "The authorization code returned by Discord",
				Required:    true,
				In:          "query",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "state",
				Description: "The state nonce issued at /login",
				Required:    true,
				In:          "query",
				Schema:      docs.IdSchema,
			},
		},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	code := r.URL.Query().Get("code")
	stateParam := r.URL.Query().Get("state")

	if code == "" || stateParam == "" {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "code and state query parameters are required"},
		}
	}

	sess := api.SessionFromRequest(r)

	if sess == nil || sess.OAuthState == "" {
		state.Logger.Warn("OAuth callback without a pending login session")
		return uapi.HttpResponse{
			Status: http.StatusForbidden,
			Json:   types.ApiError{Message: "No pending login found, please log in again"},
		}
	}

	if sess.OAuthState != stateParam {
		state.Logger.Warn(
			"OAuth state mismatch, rejecting callback",
			zap.String("sessionId", sess.ID),
		)

		return uapi.HttpResponse{
			Status: http.StatusForbidden,
			Json:   types.ApiError{Message: "OAuth state mismatch"},
		}
	}

	// Clear the nonce before exchanging so the callback cannot be
	// replayed even if the exchange fails midway
	sess.OAuthState = ""

	if err := state.SessionStore.Put(d.Context, sess); err != nil {
		state.Logger.Error("Failed to persist session", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	loginRedirect := uapi.HttpResponse{
		Status:   http.StatusFound,
		Redirect: state.Config.Dashboard.Path() + "/login",
	}

	tok, err := state.OAuth.Exchange(d.Context, code)

	if err != nil {
		var te *oauth.TokenExchangeError

		if errors.As(err, &te) {
			state.Logger.Error("Token exchange rejected by Discord", zap.Int("status", te.StatusCode), zap.String("body", te.Body))
		} else {
			state.Logger.Error("Token exchange failed", zap.Error(err))
		}

		return loginRedirect
	}

	user, err := state.OAuth.FetchUser(d.Context, tok.AccessToken)

	if err != nil {
		state.Logger.Error("Failed to fetch user profile", zap.Error(err))
		return loginRedirect
	}

	user.AvatarURL = utils.UserAvatarURL(user)

	guilds, err := state.OAuth.FetchGuilds(d.Context, tok.AccessToken)

	if err != nil {
		state.Logger.Error("Failed to fetch user guilds", zap.Error(err))
		return loginRedirect
	}

	sess.Auth = &sessions.Auth{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    oauth.TokenExpiry(tok),
		User:         user,
		Guilds:       guilds,
	}

	if err := state.SessionStore.Put(d.Context, sess); err != nil {
		state.Logger.Error("Failed to persist authenticated session", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	state.Logger.Info(
		"User logged in",
		zap.String("userId", user.ID),
		zap.Int("guildCount", len(guilds)),
	)

	return uapi.HttpResponse{
		Status:   http.StatusFound,
		Redirect: state.Config.Dashboard.Path(),
	}
}
