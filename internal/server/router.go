// Package server exposes lesson generation, scoring and portfolio printing
// over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shirley/readingcoach/internal/lesson"
)

// Generator produces lessons. *lesson.Service satisfies it.
type Generator interface {
	Generate(ctx context.Context, req lesson.GenerateRequest) lesson.LessonContent
	Providers() []string
}

// Options configures the router.
type Options struct {
	CORSOrigins []string
	Version     string
	Now         func() time.Time
}

// NewRouter wires middleware and routes.
func NewRouter(opts Options, gen Generator, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(log))

	// Disable automatic redirection for trailing slashes
	router.RedirectTrailingSlash = false

	corsConfig := cors.DefaultConfig()
	if len(opts.CORSOrigins) == 0 || slices.Contains(opts.CORSOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = opts.CORSOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	h := &handler{gen: gen, version: opts.Version, now: opts.Now, log: log}

	router.GET("/health", h.health)

	api := router.Group("/api")
	api.POST("/generate", h.generate)
	api.GET("/themes", h.themes)
	api.POST("/score", h.score)
	api.POST("/portfolio", h.portfolio)

	return router
}

// Run serves h on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
