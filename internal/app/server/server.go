// Package server assembles the chi router: public resolution routes plus the
// session-gated management API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/app/handler"
	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/middleware"
)

// Init builds the router. trustedSubnet, when non-empty, additionally
// restricts permanent deletion to that CIDR.
func Init(logger *zap.Logger, shortener service.ShortenerIface, resolver service.ResolverIface, auth service.AuthIface, trustedSubnet string) *chi.Mux {
	get := handler.NewGet(shortener, resolver, logger)
	post := handler.NewPost(shortener, logger)
	put := handler.NewPut(shortener, logger)
	del := handler.NewDelete(shortener, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/ping", get.Ping)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.WithSession(auth))
		api.Use(middleware.WithGZIPPost)
		api.Use(middleware.WithGZIPGet)

		api.Get("/urls", get.Active)
		api.Post("/urls", post.Create)
		api.Put("/urls", put.Update)
		api.Delete("/urls", del.Archive)

		api.Get("/archive", get.Archived)
		api.Put("/archive", put.Restore)
		api.With(middleware.WithSubnet(trustedSubnet)).Delete("/archive", del.Purge)

		api.Post("/check-duplicates", post.CheckDuplicates)
	})

	r.With(middleware.WithSession(auth)).Put("/{id}", put.UpdateByID)
	r.Get("/{id}", get.Resolve)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short URL is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
