package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"safezone/internal/api/handlers/http/alerts"
	"safezone/internal/api/handlers/http/system"
	"safezone/internal/api/handlers/http/zones"
	"safezone/internal/config"
	"safezone/internal/middleware"
	"safezone/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Pinger) *Server {
	zoneHandler := zones.NewHandler(logger, svc.Zones, cfg.ShowErrorDetails())
	alertHandler := alerts.NewHandler(logger, svc.Alerts, cfg.ShowErrorDetails())
	systemHandler := system.NewHandler(logger, checks)

	r := InitRouter(cfg, zoneHandler, alertHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, zoneHandler *zones.Handler, alertHandler *alerts.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/health", systemHandler.SystemHealth)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.APIKeyMiddleware(cfg.APIKey))

			pr.Route("/zones", func(zr chi.Router) {
				zr.Use(middleware.RequireIdentity)

				zr.Post("/", zoneHandler.ZoneCreate)
				zr.Get("/", zoneHandler.ZoneList)
				zr.Get("/me", zoneHandler.ZoneListMine)
				zr.Get("/type/{type}", zoneHandler.ZoneListByType)
				zr.Get("/bbox", zoneHandler.ZoneBoundingBox)
				zr.Get("/nearby", zoneHandler.ZoneNearby)
				zr.Get("/search", zoneHandler.ZoneSearch)
				zr.Get("/stats", zoneHandler.ZoneStats)
				zr.Get("/summary", zoneHandler.ZoneSummary)
				zr.Get("/critical", zoneHandler.CriticalZoneList)

				zr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", zoneHandler.ZoneGet)
					rr.Put("/", zoneHandler.ZoneUpdate)
					rr.Delete("/", zoneHandler.ZoneDelete)
					rr.Put("/coordinates", zoneHandler.ZoneUpdateCoordinates)
				})
			})

			pr.Route("/alerts", func(ar chi.Router) {
				ar.Use(middleware.Limit(cfg.Http.AlertRPS, cfg.Http.AlertBurst, 10*time.Minute, logger))
				ar.Use(middleware.RequireIdentity)
				ar.Post("/", alertHandler.AlertSend)
			})
		})
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
