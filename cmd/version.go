package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shirley/readingcoach/internal/lesson"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "readingcoach %s (lesson build %s)\n", version, lesson.BuildVersion)
	},
}
