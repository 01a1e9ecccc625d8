package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shirley/readingcoach/internal/logger"
	"github.com/shirley/readingcoach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("port"); p != "" {
			cfg.Port = p
		}

		log, err := logger.New(cfg.Env)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.Production() {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, cleanup, err := newLessonService(ctx, cmd, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		log.Info("starting readingcoach",
			zap.String("version", cfg.Lesson.Version),
			zap.Strings("providers", svc.Providers()),
			zap.String("mode", string(cfg.Lesson.Mode)),
			zap.String("gate", cfg.Lesson.Gate))

		router := server.NewRouter(server.Options{
			CORSOrigins: cfg.CORSOrigins,
			Version:     cfg.Lesson.Version,
		}, svc, log)
		return server.Run(ctx, cfg.Addr(), router, log)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Listen port (overrides PORT env var)")
}
