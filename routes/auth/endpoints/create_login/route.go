package create_login

import (
	"net/http"
	"time"

	"github.com/infinitybotlist/eureka/crypto"
	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"go.uber.org/zap"

	"guildboard/sessions"
	"guildboard/state"
	"guildboard/types"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Create Login",
		Description: "Starts the OAuth2 login flow: stores a single-use state nonce in a fresh session and redirects the browser to Discord's authorize page.",
		Resp:        types.ApiError{},
	}
}

func Route(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	now := time.Now()

	sess := &sessions.Data{
		ID:         crypto.RandString(64),
		OAuthState: crypto.RandString(32),
		CreatedAt:  now,
		ExpiresAt:  now.Add(state.Config.Dashboard.SessionLifetime()),
	}

	if err := state.SessionStore.Put(d.Context, sess); err != nil {
		state.Logger.Error("Failed to persist login session", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	cookie := sessions.NewCookie(
		state.Config.Dashboard.SessionCookie,
		sess.ID,
		state.Config.Dashboard.Path(),
		state.Config.Dashboard.SessionLifetime(),
	)

	// uapi overwrites Headers when Redirect is set, which would drop the
	// session cookie; set Location directly so both headers are sent.
	return uapi.HttpResponse{
		Status: http.StatusFound,
		Headers: map[string]string{
			"Location":   state.OAuth.AuthCodeURL(sess.OAuthState),
			"Set-Cookie": cookie.String(),
		},
	}
}
