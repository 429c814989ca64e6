// Package server exposes the assessment engine over a REST API.
// Sessions are created by uploading a CSV dataset; every analysis panel
// of the stored assessment is addressable on its own route.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/udyamlabs/finhealth-cli/internal/advisor"
	"github.com/udyamlabs/finhealth-cli/internal/config"
	"github.com/udyamlabs/finhealth-cli/internal/forecast"
	"github.com/udyamlabs/finhealth-cli/internal/report"
	"github.com/udyamlabs/finhealth-cli/internal/store"
)

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	store    store.Store
	opts     report.Options
	language string
	httpSrv  *http.Server
}

// New creates a configured API server with all routes and middleware.
func New(cfg *config.Config, st store.Store) *Server {
	s := &Server{
		store: st,
		opts: report.Options{
			ForecastPeriods: cfg.Forecast.Periods,
			ForecastMethod:  forecast.Method(cfg.Forecast.Method),
			Narrator:        advisor.NewNarrator(cfg.Advisor.Key, cfg.Advisor.Model),
		},
		language: cfg.Locale.Language,
	}
	s.router = s.buildRouter(cfg.Server)
	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the server and blocks until ctx is canceled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zap.L().Info("starting server", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

func (s *Server) buildRouter(cfg config.ServerConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(rateLimit(cfg.RateLimit, cfg.RateBurst))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", s.handleCreateSession)
		r.Get("/sessions", s.handleListSessions)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Get("/assessment", s.panel(func(a *report.Assessment) any { return a }))
			r.Get("/summary", s.panel(func(a *report.Assessment) any { return a.Summary(s.language) }))
			r.Get("/metrics", s.panel(func(a *report.Assessment) any { return a.Metrics }))
			r.Get("/score", s.panel(func(a *report.Assessment) any {
				return map[string]any{"health_score": a.HealthScore, "components": a.Components}
			}))
			r.Get("/tax", s.panel(func(a *report.Assessment) any {
				return map[string]any{"compliance": a.Tax, "deductions": a.Deductions}
			}))
			r.Get("/working-capital", s.panel(func(a *report.Assessment) any {
				return map[string]any{"analysis": a.WorkingCapital, "products": a.WCProducts}
			}))
			r.Get("/cost", s.panel(func(a *report.Assessment) any { return a.Cost }))
			r.Get("/credit", s.panel(func(a *report.Assessment) any { return a.Credit }))
			r.Get("/forecast", s.panel(func(a *report.Assessment) any {
				return map[string]any{
					"trends":    a.Trends,
					"forecast":  a.RevenueForecast,
					"scenarios": a.Scenarios,
				}
			}))
			r.Get("/products", s.panel(func(a *report.Assessment) any { return a.Products }))
			r.Get("/advice", s.panel(func(a *report.Assessment) any {
				return map[string]any{"advice": a.Advice, "narrative": a.Narrative}
			}))
		})

		r.Get("/guidance/security", s.handleSecurityGuidance)
		r.Get("/guidance/compliance", s.handleComplianceGuidance)

		r.Post("/integrations/bank/connect", s.handleBankConnect)
		r.Post("/integrations/gst/import", s.handleGSTImport)
	})

	return r
}

// requestLogger logs each request through the global zap logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
