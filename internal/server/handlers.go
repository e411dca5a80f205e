package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	tlog "ng-jenkins-demo/internal/log"
	"ng-jenkins-demo/internal/notify"
	"ng-jenkins-demo/internal/pages"
)

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(WithRequestLogger(s.logger))

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)
	r.Handle("/static/*", pages.Static())

	r.Route("/api", func(r chi.Router) {
		r.Get("/build", s.handleBuild)
		r.Get("/pipeline", s.handlePipeline)
		r.Get("/notifications", s.handleNotifications)
		r.Get("/notifications/{action}", s.handleNotification)
	})

	return r
}

// GET /
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	params := pages.NewHomeParams(s.shell, s.build, s.pipeline)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.Home(w, params); err != nil {
		tlog.FromContext(r.Context()).Error("failed to render home", "err", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

type buildResponse struct {
	Version string `json:"version"`
	BuildID string `json:"buildId"`
}

// GET /api/build -> the shell's build metadata
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, buildResponse{
		Version: s.shell.Version,
		BuildID: s.shell.BuildID,
	})
}

// GET /api/pipeline
func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"name":   s.pipeline.Name,
		"status": s.build,
		"stages": s.pipeline.Numbered(),
	})
}

// GET /api/notifications
func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, notify.All())
}

// GET /api/notifications/{action}
func (s *Server) handleNotification(w http.ResponseWriter, r *http.Request) {
	n, err := notify.Lookup(chi.URLParam(r, "action"))
	if err != nil {
		writeJSON(w, r, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, r, http.StatusOK, n)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tlog.FromContext(r.Context()).Error("failed to encode response", "err", err)
	}
}
