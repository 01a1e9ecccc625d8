package cmd

import (
	"encoding/json"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/shirley/readingcoach/internal/lesson"
	"github.com/shirley/readingcoach/internal/logger"
	"github.com/shirley/readingcoach/internal/ui/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate [theme-id]",
	Short: "Generate one lesson and print it",
	Long: "Generate one lesson through the provider chain and print it to the terminal.\n" +
		"Run `readingcoach themes` for the list of theme IDs.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log, err := logger.NewQuiet(cfg.Env)
		if err != nil {
			return err
		}
		defer log.Sync()

		svc, cleanup, err := newLessonService(cmd.Context(), cmd, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		req := lesson.GenerateRequest{}
		if len(args) == 1 {
			req.ThemeID = args[0]
		}
		req.Level, _ = cmd.Flags().GetString("level")
		req.ThemeEn, _ = cmd.Flags().GetString("theme-en")
		req.ThemeZh, _ = cmd.Flags().GetString("theme-zh")

		content := svc.Generate(cmd.Context(), req)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(content)
		}

		zh, _ := cmd.Flags().GetBool("zh")
		answers, _ := cmd.Flags().GetBool("answers")
		width, _ := cmd.Flags().GetInt("width")
		_, err = lipgloss.Fprint(cmd.OutOrStdout(), render.Lesson(content, render.Options{
			Width:       width,
			ShowChinese: zh,
			ShowAnswers: answers,
		}))
		if err != nil {
			return fmt.Errorf("write lesson: %w", err)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("level", "l", "Easy", "Difficulty: Easy, Medium or Hard")
	generateCmd.Flags().String("theme-en", "", "English topic label (overrides the catalog)")
	generateCmd.Flags().String("theme-zh", "", "Chinese topic label (overrides the catalog)")
	generateCmd.Flags().Bool("json", false, "Print the lesson as JSON")
	generateCmd.Flags().Bool("zh", false, "Show Traditional Chinese translations")
	generateCmd.Flags().Bool("answers", false, "Mark correct answers and show explanations")
	generateCmd.Flags().IntP("width", "w", 80, "Wrap width")
}
