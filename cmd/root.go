package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/drizzledoc/drizzledoc/cmd/extract"
	"github.com/drizzledoc/drizzledoc/cmd/stats"
	"github.com/drizzledoc/drizzledoc/internal/logger"
	"github.com/drizzledoc/drizzledoc/internal/version"
)

var Debug bool

var RootCmd = &cobra.Command{
	Use:   "drizzledoc",
	Short: "Entity-relationship documentation for drizzle schemas",
	Long: fmt.Sprintf(`drizzledoc parses drizzle schema files into a normalized entity model
and renders documentation from it.

Version: %s@%s %s %s

Commands:
  extract  Extract the entity model and render it
  stats    Report entity-type and relation statistics

Use "drizzledoc [command] --help" for more information about a command.`,
		version.App(), version.GetGitCommit(), version.Platform(), version.GetBuildDate()),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	RootCmd.AddCommand(extract.ExtractCmd)
	RootCmd.AddCommand(stats.StatsCmd)
	RootCmd.AddCommand(VersionCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger.SetGlobal(slog.New(handler), Debug)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
