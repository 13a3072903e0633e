// Package server assembles the dashboard's chi mux. The returned mux is
// the embeddable artifact: hosts can mount it into their own router or
// serve it directly.
package server

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	_ "embed"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/jsonimpl"
	"github.com/infinitybotlist/eureka/uapi"
	"github.com/infinitybotlist/eureka/zapchi"
	"go.uber.org/zap"

	"guildboard/api"
	"guildboard/constants"
	"guildboard/routes/auth"
	"guildboard/routes/core"
	"guildboard/routes/dashboard"
	"guildboard/routes/guilds"
	"guildboard/routes/lookup"
	"guildboard/routes/plugins"
	"guildboard/state"
	"guildboard/types"
)

//go:embed docs/docs.html
var docsHTML string

//go:embed docs/desc.md
var descMd string

var openapi []byte

func defaultHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// limit body to 1mb, action payloads are small
		r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

		w.Header().Set("Content-Type", "application/json")

		next.ServeHTTP(w, r)
	})
}

func CreateWebserver() *chi.Mux {
	docs.DocsSetupData = &docs.SetupData{
		URL:         fmt.Sprintf("http://localhost:%d", state.Config.Meta.Port),
		ErrorStruct: types.ApiError{},
		Info: docs.Info{
			Title:       state.Config.Dashboard.Name,
			Version:     "1.0",
			Description: descMd,
		},
	}

	docs.Setup()

	api.Setup()

	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		middleware.CleanPath,
		defaultHeaders,
		zapchi.Logger(state.Logger, "dashboard"),
		middleware.Timeout(30*time.Second),
	)

	inner := chi.NewRouter()

	routers := []uapi.APIRouter{
		// Use same order as routes folder
		auth.Router{},
		core.Router{},
		dashboard.Router{},
		guilds.Router{},
		lookup.Router{},
		plugins.Router{},
	}

	for _, router := range routers {
		name, desc := router.Tag()
		if name != "" {
			docs.AddTag(name, desc)
			uapi.State.SetCurrentTag(name)
		} else {
			panic("Router tag name cannot be empty")
		}

		router.Routes(inner)
	}

	inner.Get("/openapi", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(openapi)
	})

	docsTempl := template.Must(template.New("docs").Parse(docsHTML))

	inner.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		err := docsTempl.Execute(w, map[string]string{
			"url": state.Config.Dashboard.Path() + "/openapi",
		})

		if err != nil {
			state.Logger.Error("Error executing template", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("Error executing template"))
		}
	})

	// Load openapi here to avoid large marshalling in every request
	var err error
	openapi, err = jsonimpl.Marshal(docs.GetSchema())

	if err != nil {
		panic(err)
	}

	notFound := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(constants.EndpointNotFound))
	}

	methodNotAllowed := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(constants.MethodNotAllowed))
	}

	inner.NotFound(notFound)
	inner.MethodNotAllowed(methodNotAllowed)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Mount(state.Config.Dashboard.Path(), inner)

	return r
}
