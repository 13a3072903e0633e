package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/jsonimpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"guildboard/config"
	"guildboard/dashboard"
	"guildboard/oauth"
	"guildboard/sessions"
	"guildboard/state"
	"guildboard/types"
)

var (
	testMux   *chi.Mux
	setupOnce sync.Once
)

func fakeDiscord() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/token":
			_ = r.ParseForm()

			if r.FormValue("code") != "goodcode" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"usertok","token_type":"Bearer","expires_in":604800}`))
		case "/users/@me":
			if r.Header.Get("Authorization") != "Bearer usertok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			_, _ = w.Write([]byte(`{"id":"80351110224678912","username":"nelly","discriminator":"0","global_name":"Nelly"}`))
		case "/users/@me/guilds":
			switch r.Header.Get("Authorization") {
			case "Bearer usertok":
				_, _ = w.Write([]byte(`[
					{"id":"100","name":"Home Base","owner":false,"permissions":"8"},
					{"id":"200","name":"Just A Member","owner":false,"permissions":"0"},
					{"id":"300","name":"New Frontier","owner":true,"permissions":"32"}
				]`))
			case "Bot bottoken":
				_, _ = w.Write([]byte(`[{"id":"100","name":"Home Base","owner":false,"permissions":"8"}]`))
			default:
				w.WriteHeader(http.StatusUnauthorized)
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func getTestSections(ctx context.Context, d *dashboard.Context) ([]*types.HomeSection, error) {
	return []*types.HomeSection{
		{
			ID:         "prefs",
			Title:      "Preferences",
			CategoryID: "overview",
			Fields: []*types.SectionField{
				{ID: "enabled", Label: "Enabled", Type: types.FieldTypeBoolean},
				{ID: "threshold", Label: "Threshold", Type: types.FieldTypeNumber},
				{ID: "words", Label: "Words", Type: types.FieldTypeStringList},
			},
			Actions: []*types.SectionAction{
				{ID: "save", Label: "Save", Variant: "primary", CollectFields: true},
			},
		},
	}, nil
}

func saveAction(ctx context.Context, d *dashboard.Context, p *types.ActionPayload) (*types.ActionResult, error) {
	return &types.ActionResult{Ok: true, Message: "saved", Refresh: true, Data: p.Values}, nil
}

func boomAction(ctx context.Context, d *dashboard.Context, p *types.ActionPayload) (*types.ActionResult, error) {
	return nil, errors.New("boom")
}

func explodeAction(ctx context.Context, d *dashboard.Context, p *types.ActionPayload) (*types.ActionResult, error) {
	panic("kaboom")
}

func musicPanels(ctx context.Context, d *dashboard.Context) ([]*types.PluginPanel, error) {
	return []*types.PluginPanel{
		{
			ID:    "queue",
			Title: "Queue",
			Fields: []*types.PanelField{
				{ID: "now", Label: "Now Playing", Value: "nothing"},
			},
			Actions: []*types.PanelAction{
				{ID: "play", Label: "Play", Variant: "primary"},
			},
		},
	}, nil
}

func brokenPanels(ctx context.Context, d *dashboard.Context) ([]*types.PluginPanel, error) {
	return nil, errors.New("backend unavailable")
}

func setupTestServer(t *testing.T) *chi.Mux {
	setupOnce.Do(func() {
		discord := fakeDiscord()

		state.Logger = zap.NewNop()
		state.Config = &config.Config{
			DiscordAuth: config.DiscordAuth{
				Token:        "bottoken",
				ClientID:     "1234",
				ClientSecret: "hush",
				RedirectURI:  "http://localhost:8081/dashboard/callback",
			},
			Dashboard: config.Dashboard{
				Name:                 "Test Dashboard",
				BasePath:             "/dashboard",
				SessionCookie:        "guildboard_session",
				SessionMaxAge:        3600,
				BotInvitePermissions: "8",
			},
			Meta: config.Meta{
				Port:           8081,
				DiscordAPI:     discord.URL,
				RequestTimeout: 5,
			},
		}
		state.SessionStore = sessions.NewMemory()
		state.OAuth = oauth.New(state.Config)
		state.Hooks = &dashboard.Hooks{
			Home: dashboard.Home{
				GetSections: getTestSections,
				Actions: map[string]dashboard.ActionFunc{
					"save":    saveAction,
					"boom":    boomAction,
					"explode": explodeAction,
				},
			},
			Plugins: []*dashboard.Plugin{
				{
					ID:        "music",
					Name:      "Music",
					GetPanels: musicPanels,
					Actions: map[string]dashboard.ActionFunc{
						"play": saveAction,
					},
				},
				{
					ID:        "broken",
					Name:      "Broken",
					GetPanels: brokenPanels,
				},
			},
		}

		testMux = CreateWebserver()
	})

	return testMux
}

func doReq(t *testing.T, method, path string, cookies []*http.Cookie, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		b, err := jsonimpl.Marshal(body)
		require.NoError(t, err)
		buf.Write(b)
	}

	req := httptest.NewRequest(method, path, &buf)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	setupTestServer(t).ServeHTTP(rec, req)

	return rec.Result()
}

func decode(t *testing.T, res *http.Response, v any) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, jsonimpl.UnmarshalReader(res.Body, v))
}

// login walks the full OAuth flow against the fake Discord server and
// returns the authenticated session cookie.
func login(t *testing.T) []*http.Cookie {
	t.Helper()

	res := doReq(t, "GET", "/dashboard/login", nil, nil)
	require.Equal(t, http.StatusFound, res.StatusCode)

	cookies := res.Cookies()
	require.NotEmpty(t, cookies)

	loc, err := url.Parse(res.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "discord.com", loc.Host)

	stateParam := loc.Query().Get("state")
	require.NotEmpty(t, stateParam)

	res = doReq(t, "GET", "/dashboard/callback?code=goodcode&state="+stateParam, cookies, nil)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))

	return cookies
}

func TestUnauthenticatedRequests(t *testing.T) {
	res := doReq(t, "GET", "/dashboard/api/guilds", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res = doReq(t, "GET", "/dashboard/api/overview", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// The shell redirects instead of erroring
	res = doReq(t, "GET", "/dashboard/", nil, nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/dashboard/login", res.Header.Get("Location"))
}

func TestSessionEndpointIsIdempotent(t *testing.T) {
	for i := 0; i < 2; i++ {
		res := doReq(t, "GET", "/dashboard/api/session", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var info types.SessionInfo
		decode(t, res, &info)
		assert.False(t, info.Authenticated)
	}
}

func TestLoginFlow(t *testing.T) {
	cookies := login(t)

	res := doReq(t, "GET", "/dashboard/api/session", cookies, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var info types.SessionInfo
	decode(t, res, &info)
	assert.True(t, info.Authenticated)
	require.NotNil(t, info.User)
	assert.Equal(t, "Nelly", info.User.GlobalName)
	assert.NotEmpty(t, info.User.AvatarURL)
	assert.Equal(t, 2, info.GuildCount)
	require.NotNil(t, info.ExpiresAt)
}

func TestStateMismatchRejected(t *testing.T) {
	res := doReq(t, "GET", "/dashboard/login", nil, nil)
	require.Equal(t, http.StatusFound, res.StatusCode)
	cookies := res.Cookies()

	res = doReq(t, "GET", "/dashboard/callback?code=goodcode&state=forged", cookies, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res = doReq(t, "GET", "/dashboard/api/session", cookies, nil)
	var info types.SessionInfo
	decode(t, res, &info)
	assert.False(t, info.Authenticated)
}

func TestCallbackMissingParams(t *testing.T) {
	res := doReq(t, "GET", "/dashboard/callback?code=goodcode", nil, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = doReq(t, "GET", "/dashboard/callback?state=x", nil, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGuildListEnrichment(t *testing.T) {
	cookies := login(t)

	res := doReq(t, "GET", "/dashboard/api/guilds", cookies, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list types.GuildList
	decode(t, res, &list)
	require.Len(t, list.Guilds, 2)

	// Guild 200 (no manage perms) is filtered out
	assert.Equal(t, "100", list.Guilds[0].ID)
	assert.True(t, list.Guilds[0].BotInGuild)
	assert.Empty(t, list.Guilds[0].InviteURL)

	assert.Equal(t, "300", list.Guilds[1].ID)
	assert.False(t, list.Guilds[1].BotInGuild)
	assert.Contains(t, list.Guilds[1].InviteURL, "client_id=1234")
	assert.Contains(t, list.Guilds[1].InviteURL, "guild_id=300")
}

func TestUnmanageableGuildRejected(t *testing.T) {
	cookies := login(t)

	res := doReq(t, "GET", "/dashboard/api/overview?guildId=200", cookies, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res = doReq(t, "GET", "/dashboard/api/overview?guildId=999", cookies, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res = doReq(t, "GET", "/dashboard/api/overview?guildId=100", cookies, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestOwnerAllowlist(t *testing.T) {
	cookies := login(t)

	state.Config.Dashboard.OwnerIDs = []string{"999"}
	defer func() { state.Config.Dashboard.OwnerIDs = nil }()

	res := doReq(t, "GET", "/dashboard/api/guilds", cookies, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestOverviewCards(t *testing.T) {
	cookies := login(t)

	res := doReq(t, "GET", "/dashboard/api/overview", cookies, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var cards types.CardList
	decode(t, res, &cards)
	require.Len(t, cards.Cards, 3)
	assert.Equal(t, "Nelly", cards.Cards[0].Value)
}

func TestHomeCategoriesAndSections(t *testing.T) {
	cookies := login(t)

	res := doReq(t, "GET", "/dashboard/api/home/categories", cookies, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var cats types.CategoryList
	decode(t, res, &cats)
	assert.Equal(t, types.ScopeUser, cats.ActiveScope)
	require.NotEmpty(t, cats.Categories)
	assert.Equal(t, "overview", cats.Categories[0].ID)

	res = doReq(t, "GET", "/dashboard/api/home?guildId=100", cookies, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var secs types.SectionList
	decode(t, res, &secs)
	assert.Equal(t, types.ScopeGuild, secs.ActiveScope)
	require.Len(t, secs.Sections, 1)
	assert.Equal(t, "prefs", secs.Sections[0].ID)

	res = doReq(t, "GET", "/dashboard/api/home?guildId=100&categoryId=nomatch", cookies, nil)
	decode(t, res, &secs)
	assert.Empty(t, secs.Sections)
}

func TestHomeActions(t *testing.T) {
	cookies := login(t)

	payload := types.ActionPayload{
		SectionID: "prefs",
		Values: map[string]any{
			"enabled":   "true",
			"threshold": "5",
			"words":     []any{" ban ", "", "kick"},
		},
	}

	res := doReq(t, "POST", "/dashboard/api/home/save?guildId=100", cookies, payload)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var result types.ActionResult
	decode(t, res, &result)
	assert.True(t, result.Ok)
	assert.True(t, result.Refresh)

	// The handler saw coerced values
	values, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, values["enabled"])
	assert.Equal(t, 5.0, values["threshold"])
	assert.Equal(t, []any{"ban", "kick"}, values["words"])

	// Unknown action
	res = doReq(t, "POST", "/dashboard/api/home/nope", cookies, payload)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	decode(t, res, &result)
	assert.False(t, result.Ok)
	assert.Equal(t, "Home action not found", result.Message)

	// Malformed payload
	res = doReq(t, "POST", "/dashboard/api/home/save", cookies, map[string]any{"values": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestActionErrorsDoNotKillServer(t *testing.T) {
	cookies := login(t)
	payload := types.ActionPayload{SectionID: "prefs", Values: map[string]any{}}

	res := doReq(t, "POST", "/dashboard/api/home/boom", cookies, payload)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var result types.ActionResult
	decode(t, res, &result)
	assert.False(t, result.Ok)
	assert.Equal(t, "boom", result.Message)

	res = doReq(t, "POST", "/dashboard/api/home/explode", cookies, payload)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	decode(t, res, &result)
	assert.False(t, result.Ok)
	assert.Contains(t, result.Message, "kaboom")

	// Server still answers afterwards
	res = doReq(t, "GET", "/dashboard/api/session", cookies, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPluginsIsolation(t *testing.T) {
	cookies := login(t)

	res := doReq(t, "GET", "/dashboard/api/plugins", cookies, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list types.PluginList
	decode(t, res, &list)
	require.Len(t, list.Plugins, 2)

	assert.Equal(t, "music", list.Plugins[0].ID)
	require.Len(t, list.Plugins[0].Panels, 1)

	assert.Equal(t, "broken", list.Plugins[1].ID)
	assert.NotEmpty(t, list.Plugins[1].Error)
	assert.Empty(t, list.Plugins[1].Panels)
}

func TestPluginActions(t *testing.T) {
	cookies := login(t)
	payload := types.ActionPayload{SectionID: "queue", Values: map[string]any{}}

	res := doReq(t, "POST", "/dashboard/api/plugins/music/play", cookies, payload)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = doReq(t, "POST", "/dashboard/api/plugins/music/stop", cookies, payload)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var result types.ActionResult
	decode(t, res, &result)
	assert.Equal(t, "Action not found", result.Message)

	res = doReq(t, "POST", "/dashboard/api/plugins/nope/play", cookies, payload)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	decode(t, res, &result)
	assert.Equal(t, "Plugin not found", result.Message)
}

func TestLogout(t *testing.T) {
	cookies := login(t)

	res := doReq(t, "POST", "/dashboard/logout", cookies, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	cleared := res.Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, -1, cleared[0].MaxAge)

	res = doReq(t, "GET", "/dashboard/api/session", cookies, nil)
	var info types.SessionInfo
	decode(t, res, &info)
	assert.False(t, info.Authenticated)
}
