package server

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/triage-api/internal/config"
	"github.com/sells-group/triage-api/internal/model"
)

// Analyzer is the analysis operation the handlers depend on.
type Analyzer interface {
	AnalyzeBatch(ctx context.Context, complaints []model.ComplaintInput) (*model.AnalysisResponse, error)
	Configured() bool
}

// Server wires the HTTP surface: the analysis API plus static hosting for
// the bundled front-end.
type Server struct {
	analyzer Analyzer
	cfg      config.ServerConfig
}

// New creates a Server.
func New(analyzer Analyzer, cfg config.ServerConfig) *Server {
	return &Server{analyzer: analyzer, cfg: cfg}
}

// Router builds the chi router with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/health", s.handleHealth)

	s.mountStatic(r)

	return r
}

// mountStatic serves the front-end directory at the root, if it exists.
func (s *Server) mountStatic(r chi.Router) {
	dir := s.cfg.StaticDir
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		zap.L().Debug("server: static dir not found, skipping", zap.String("dir", dir))
		return
	}
	r.Handle("/*", http.FileServer(http.Dir(dir)))
}
