package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mangaapi/internal/catalog"
	"mangaapi/internal/config"
	"mangaapi/internal/extract"
	"mangaapi/internal/platform/llm"
	"mangaapi/internal/platform/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.RequireServer()
	}
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := catalog.OpenStore(ctx, cfg.DBDriver, cfg.DBDSN, cfg.DBTimeout)
	if err != nil {
		log.Fatal("open store", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer store.Close()
	log.Info("database connection OK", zap.String("driver", cfg.DBDriver))

	fetcher := extract.NewFetcher(extract.FetcherOptions{
		Timeout:   cfg.Fetch.Timeout,
		RPS:       cfg.Fetch.RPS,
		UserAgent: cfg.Fetch.UserAgent,
		MaxChars:  cfg.Fetch.MaxSourceChars,
	}, log.Named("fetch"))
	model := llm.New(llm.Options{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, log.Named("llm"))
	if cfg.LLM.APIKey == "" {
		log.Warn("LLM_API_KEY is not set; extraction calls will fail")
	}

	catalogSvc := catalog.NewService(store, log.Named("catalog"))
	extractSvc := extract.NewService(fetcher, model, log.Named("extract"))

	limiter := newRateLimiter()
	go limiter.Run(ctx)

	handler := newRouter(routerDeps{
		catalog:   catalog.NewHTTPHandler(catalogSvc),
		extract:   extract.NewHTTPHandler(extractSvc),
		ready:     store.Ping,
		jwtSecret: cfg.JWTSecret,
		adminID:   cfg.AdminUserID,
		origins:   cfg.CORSOrigins,
		limiter:   limiter,
		log:       log,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + cfg.Fetch.Timeout*10 + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", zap.String("addr", cfg.Addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server error", zap.Error(err))
	}
	log.Info("server stopped")
}
