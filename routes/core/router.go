package core

import (
	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/uapi"

	"guildboard/routes/core/endpoints/get_shell"
)

const tagName = "Core"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints serve the embedded dashboard shell"
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/",
		OpId:    "get_shell",
		Method:  uapi.GET,
		Docs:    get_shell.Docs,
		Handler: get_shell.Route,
	}.Route(r)
}
