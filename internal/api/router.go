package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/seqren/internal/renameservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(svc *renameservice.Service, authEnabled bool, token string) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/files", h.ListFiles)
	r.Post("/plan", h.Plan)
	r.Post("/rename", h.Rename)

	return r
}
