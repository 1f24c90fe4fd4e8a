// Package api exposes the normalization pipeline over HTTP.
//
// The API accepts inline datasets (the same JSON document format the CLI
// reads from disk) and returns layouts and rendered artifacts. All routes
// are JSON in, JSON out; rendered artifact bytes are base64-encoded by the
// standard library's JSON encoding of []byte.
//
// # Routes
//
//	POST /v1/normalize  project an inline dataset into a layout
//	POST /v1/render     render an inline dataset to artifacts
//	GET  /healthz       liveness probe
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/plotgrid/plotgrid/pkg/buildinfo"
	"github.com/plotgrid/plotgrid/pkg/pipeline"
)

// Server handles HTTP requests against a shared pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates the API handler. The runner is shared across requests; it is
// safe for concurrent use.
func New(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.logMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/normalize", s.handleNormalize)
		r.Post("/render", s.handleRender)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}
