package cmd

import (
	"encoding/json"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/shirley/readingcoach/internal/lesson"
	"github.com/shirley/readingcoach/internal/ui/render"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the lesson theme catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		themes := lesson.Themes()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(themes)
		}
		_, err := lipgloss.Fprint(cmd.OutOrStdout(), render.Themes(themes))
		return err
	},
}

func init() {
	themesCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
