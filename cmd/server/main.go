package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"

	"radar-atc/internal/api"
	"radar-atc/internal/config"
	"radar-atc/internal/game/simulation"
	"radar-atc/internal/logging"
)

func main() {
	settings, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	closer := logging.Setup(settings.LogLevel, settings.LogFile)
	defer closer.Close()

	sim, err := simulation.New(simulation.Config{Settings: settings})
	if err != nil {
		log.Fatal(err)
	}
	runner := api.NewRunner(sim)

	httpServer := &http.Server{
		Addr:              settings.HTTPAddr,
		Handler:           api.New(runner),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runner.Run(ctx)

	go func() {
		log.Infof("Starting HTTP server on %s", settings.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}
	cancel()

	st := runner.State()
	log.Infof("Shutdown complete: score %.0f, %d spawned, %d exited, %d conflicts",
		st.Score, st.Stats.Spawned, st.Stats.Exited, st.Stats.ConflictEvents)
}
