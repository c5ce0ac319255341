package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/mhmaidi/folio/internal/content"
	"github.com/mhmaidi/folio/internal/logging"
	"github.com/mhmaidi/folio/internal/render"
	"github.com/mhmaidi/folio/internal/view"
	"github.com/mhmaidi/folio/internal/welcome"
)

// Config holds server configuration.
type Config struct {
	Port      int
	BasePath  string // mount point, "" or "/name"
	AssetsDir string // served under /assets/
	AllowAll  bool   // allow all CORS origins (dev mode)
	Welcome   welcome.Sequence
	// SweepInterval is how often idle views are dropped. Defaults to a
	// minute.
	SweepInterval time.Duration
	// ReleaseGrace is how long a view outlives its closed live connection.
	// Zero releases it at once.
	ReleaseGrace time.Duration
}

// Server serves the portfolio page and the fragments that drive it.
type Server struct {
	cfg        Config
	portfolio  *content.Portfolio
	render     *render.Renderer
	views      *view.Registry
	log        zerolog.Logger
	router     chi.Router
	httpServer *http.Server

	// live is cancelled on shutdown; hijacked websocket connections are
	// not tracked by http.Server.
	live     context.Context
	stopLive context.CancelFunc
}

// New creates a server. The renderer must be built in render.ModeServe.
func New(cfg Config, p *content.Portfolio, rend *render.Renderer, views *view.Registry) *Server {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.Welcome == (welcome.Sequence{}) {
		cfg.Welcome = welcome.New(welcome.DefaultFadeAfter, welcome.DefaultHideAfter)
	}
	s := &Server{
		cfg:       cfg,
		portfolio: p,
		render:    rend,
		views:     views,
		log:       logging.Component("server"),
	}
	s.live, s.stopLive = context.WithCancel(context.Background())
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Target", "HX-Trigger", "HX-Current-URL"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	site := chi.NewRouter()
	site.Get("/healthz", s.handleHealth)
	site.Get("/static/folio.css", s.handleStatic("text/css; charset=utf-8", render.CSS()))
	site.Get("/static/folio.js", s.handleStatic("text/javascript; charset=utf-8", render.JS()))
	site.Get("/assets/*", s.handleAssets)

	// The live connection outlives any request timeout.
	site.Get("/views/{id}/live", s.handleLive)

	site.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/", s.handlePage)
		r.Route("/views/{id}", func(r chi.Router) {
			r.Post("/scroll", s.handleScroll)
			r.Post("/menu", s.handleMenu)
			r.Post("/navigate/{section}", s.handleNavigate)
			r.Route("/gallery", func(r chi.Router) {
				r.Post("/open", s.handleGalleryOpen)
				r.Post("/next", s.handleGalleryNext)
				r.Post("/prev", s.handleGalleryPrev)
				r.Post("/close", s.handleGalleryClose)
				r.Post("/jump/{index}", s.handleGalleryJump)
			})
		})
	})

	if s.cfg.BasePath == "" {
		r.Mount("/", site)
	} else {
		r.Mount(s.cfg.BasePath, site)
	}
	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Views returns the view registry.
func (s *Server) Views() *view.Registry { return s.views }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.httpServer.RegisterOnShutdown(s.stopLive)

	s.log.Info().Str("addr", addr).Str("base_path", s.cfg.BasePath).Msg("folio listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes live connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopLive()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Run serves until ctx is done, sweeping idle views meanwhile, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go s.views.Run(ctx, s.cfg.SweepInterval, func(n int) {
		s.log.Debug().Int("dropped", n).Int("live", s.views.Len()).Msg("swept idle views")
	})

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
