package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildboard/config"
)

func testConfig(apiBase string) *config.Config {
	return &config.Config{
		DiscordAuth: config.DiscordAuth{
			Token:        "bottoken",
			ClientID:     "1234",
			ClientSecret: "hush",
			RedirectURI:  "http://localhost:8081/dashboard/callback",
		},
		Meta: config.Meta{
			DiscordAPI:     apiBase,
			RequestTimeout: 5,
		},
	}
}

func TestAuthCodeURL(t *testing.T) {
	e := New(testConfig("https://discord.com/api/v10"))

	u, err := url.Parse(e.AuthCodeURL("noncevalue"))
	require.NoError(t, err)

	assert.Equal(t, "discord.com", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "1234", q.Get("client_id"))
	assert.Equal(t, "noncevalue", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "none", q.Get("prompt"))
	assert.Equal(t, "http://localhost:8081/dashboard/callback", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "identify")
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())

		if r.FormValue("code") != "goodcode" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		assert.Equal(t, "1234", r.FormValue("client_id"))
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"usertok","refresh_token":"r","token_type":"Bearer","expires_in":604800}`))
	}))
	defer srv.Close()

	e := New(testConfig(srv.URL))

	tok, err := e.Exchange(context.Background(), "goodcode")
	require.NoError(t, err)
	assert.Equal(t, "usertok", tok.AccessToken)
	assert.NotNil(t, TokenExpiry(tok))

	_, err = e.Exchange(context.Background(), "badcode")
	require.Error(t, err)

	var te *TokenExchangeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadRequest, te.StatusCode)
	assert.Contains(t, te.Body, "invalid_grant")
}

func TestFetches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")

		switch r.URL.Path {
		case "/users/@me":
			if auth != "Bearer usertok" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"401: Unauthorized"}`))
				return
			}

			w.Write([]byte(`{"id":"80351110224678912","username":"nelly","discriminator":"0","global_name":"Nelly"}`))
		case "/users/@me/guilds":
			switch auth {
			case "Bearer usertok":
				w.Write([]byte(`[{"id":"1","name":"a","owner":true,"permissions":"8"},{"id":"2","name":"b","owner":false,"permissions":"0"}]`))
			case "Bot bottoken":
				w.Write([]byte(`[{"id":"1","name":"a","owner":false,"permissions":"8"}]`))
			default:
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"401: Unauthorized"}`))
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	e := New(testConfig(srv.URL))
	ctx := context.Background()

	user, err := e.FetchUser(ctx, "usertok")
	require.NoError(t, err)
	assert.Equal(t, "80351110224678912", user.ID)
	assert.Equal(t, "Nelly", user.DisplayName())

	_, err = e.FetchUser(ctx, "wrong")
	require.Error(t, err)

	var fe *UpstreamFetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusUnauthorized, fe.StatusCode)
	assert.Equal(t, "/users/@me", fe.Endpoint)

	guilds, err := e.FetchGuilds(ctx, "usertok")
	require.NoError(t, err)
	require.Len(t, guilds, 2)
	assert.True(t, guilds[0].Owner)
	assert.Equal(t, "8", guilds[0].Permissions.String())

	ids := e.FetchBotGuildIDs(ctx)
	assert.Len(t, ids, 1)
	assert.Contains(t, ids, "1")
}

func TestFetchBotGuildIDsDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := New(testConfig(srv.URL))
	assert.Empty(t, e.FetchBotGuildIDs(context.Background()))
}
