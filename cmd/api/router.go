package main

import (
	"context"
	"net/http"
	"time"

	"mangaapi/internal/catalog"
	"mangaapi/internal/extract"
	"mangaapi/internal/httpx"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type routerDeps struct {
	catalog   *catalog.HTTPHandler
	extract   *extract.HTTPHandler
	ready     func(context.Context) error
	jwtSecret string
	adminID   string
	origins   []string
	limiter   *httpx.RateLimitMiddleware
	log       *zap.Logger
}

func newRateLimiter() *httpx.RateLimitMiddleware {
	return httpx.NewRateLimitMiddleware(10, 20)
}

func newRouter(d routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("GET /v1/manga", d.catalog.List)
	router.HandleFunc("GET /v1/manga/{id}", d.catalog.Get)

	auth := httpx.AuthMiddleware(d.jwtSecret, d.adminID)
	protect := func(h http.HandlerFunc) http.Handler { return auth(h) }

	router.Handle("GET /v1/admin/manga", protect(d.catalog.AdminList))
	router.Handle("PUT /v1/admin/manga", protect(d.catalog.Save))
	router.Handle("DELETE /v1/admin/manga/{id}", protect(d.catalog.Delete))
	router.Handle("POST /v1/admin/extract", protect(d.extract.Extract))
	router.Handle("POST /v1/admin/prompt", protect(d.extract.Prompt))

	return httpx.Chain(router,
		httpx.RecoveryMiddleware(d.log),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(d.log),
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(d.origins),
		httpx.RequestSizeLimitMiddleware(maxBodyBytes),
		d.limiter.Middleware,
	)
}
