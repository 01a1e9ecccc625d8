package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shirley/readingcoach/internal/config"
	"github.com/shirley/readingcoach/internal/lesson"
	"github.com/shirley/readingcoach/internal/llm"
	"github.com/shirley/readingcoach/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "readingcoach",
	Short: "Bilingual English / Traditional Chinese reading lessons",
	Long: "readingcoach generates themed English reading lessons with Traditional Chinese\n" +
		"translations, vocabulary and a quiz, falling back across LLM providers.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides READINGCOACH_DB env var)")
	rootCmd.PersistentFlags().Bool("no-events", false, "Do not record LLM requests in the event log")
	rootCmd.PersistentFlags().String("mode", "", "Response layout to request: json or sections (overrides READINGCOACH_PARSE_MODE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then READINGCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if m, _ := cmd.Flags().GetString("mode"); m != "" {
		mode, err := lesson.ParseMode(m)
		if err != nil {
			return nil, err
		}
		cfg.Lesson.Mode = mode
	}
	return cfg, nil
}

// newLessonService builds the provider tiers and the lesson service. The
// returned cleanup closes the event log.
func newLessonService(ctx context.Context, cmd *cobra.Command, cfg *config.Config, log *zap.Logger) (*lesson.Service, func(), error) {
	cleanup := func() {}

	var repo store.EventRepo
	if off, _ := cmd.Flags().GetBool("no-events"); !off {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return nil, cleanup, fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return nil, cleanup, fmt.Errorf("open database: %w", err)
		}
		repo = s.EventRepo()
		cleanup = func() { s.Close() }
	}

	tiers, err := llm.NewTiers(ctx, cfg.LLM, repo, log)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("configure LLM providers: %w", err)
	}
	if len(tiers) == 0 {
		log.Warn("no LLM API key found; lessons will be mock content",
			zap.Strings("keys", []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"}))
	}

	svc, err := lesson.NewService(tiers, cfg.Lesson, lesson.WithLogger(log))
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return svc, cleanup, nil
}
