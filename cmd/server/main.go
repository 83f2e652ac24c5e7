package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/docgen-agent/internal/api"
	"github.com/BerylCAtieno/docgen-agent/internal/config"
	"github.com/BerylCAtieno/docgen-agent/internal/generator"
	"github.com/BerylCAtieno/docgen-agent/internal/logger"
	"github.com/BerylCAtieno/docgen-agent/internal/session"
	"github.com/BerylCAtieno/docgen-agent/internal/skills"
	"github.com/BerylCAtieno/docgen-agent/internal/synth"
	"github.com/BerylCAtieno/docgen-agent/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger settings come from config, so fall back to the defaults here.
		logger.Setup("info", "text").Error("configuration error", "error", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Gemini client
	geminiClient, err := generator.NewGeminiClient(ctx, cfg.APIKey, cfg.GeneratorSettings(), log)
	if err != nil {
		log.Error("failed to create Gemini client", "error", err)
		os.Exit(1)
	}
	defer geminiClient.Close()

	store := session.NewStore()
	wf := workflow.New(skills.NewExtractor(geminiClient), synth.New(geminiClient), log)
	handler := api.NewHandler(store, wf, cfg.MaxUploadBytes, log)

	go store.RunSweeper(ctx, time.Minute, cfg.SessionMaxIdle, log)

	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(handler, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("document generation agent starting",
			"port", cfg.Port,
			"model", cfg.Model.Name,
			"agent_card", "http://localhost:"+cfg.Port+"/.well-known/agent.json",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
