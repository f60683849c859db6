package cmd

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"safezone/internal/components"
	"safezone/internal/config"
	"safezone/pkg/logger"
)

func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.SetupPrettySlog().Error("load config failed", "err", err)
		return err
	}
	log := components.SetupLogger(cfg)
	if cfg.APIKey == "" {
		log.Warn("API_KEY is empty, zone and alert routes are unauthenticated")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comps, err := components.InitComponents(ctx, cfg, log)
	if err != nil {
		log.Error("could not init components", "err", err)
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			log.Error("http server failed", "err", err)
			stop()
		}
		log.Info("http server stopped")
	}()

	if comps.EventSender != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.EventSender.Run(ctx)
		}()
	}

	<-ctx.Done()
	log.Info("captured signal, initiating shutdown")

	wg.Wait()

	log.Info("shutting down the services...")
	comps.ShutdownAll()
	log.Info("gracefully shut down")

	return nil
}
