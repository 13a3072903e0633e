package auth

import (
	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/routes/auth/endpoints/auth_callback"
	"guildboard/routes/auth/endpoints/create_login"
	"guildboard/routes/auth/endpoints/create_logout"
	"guildboard/routes/auth/endpoints/get_session"
)

const tagName = "Auth"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints handle the OAuth2 login flow and session lifecycle"
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/login",
		OpId:    "create_login",
		Method:  uapi.GET,
		Docs:    create_login.Docs,
		Handler: create_login.Route,
	}.Route(r)

	uapi.Route{
		Pattern: "/callback",
		OpId:    "auth_callback",
		Method:  uapi.GET,
		Docs:    auth_callback.Docs,
		Handler: auth_callback.Route,
	}.Route(r)

	uapi.Route{
		Pattern: "/logout",
		OpId:    "create_logout",
		Method:  uapi.POST,
		Docs:    create_logout.Docs,
		Handler: create_logout.Route,
	}.Route(r)

	uapi.Route{
		Pattern: "/api/session",
		OpId:    "get_session",
		Method:  uapi.GET,
		Docs:    get_session.Docs,
		Handler: get_session.Route,
	}.Route(r)
}
