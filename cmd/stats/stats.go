package stats

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drizzledoc/drizzledoc/internal/config"
	"github.com/drizzledoc/drizzledoc/internal/parser"
	"github.com/drizzledoc/drizzledoc/internal/render"
)

var includes []string

var StatsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Report entity-type and relation statistics",
	Long:  "Parse drizzle schema files under the given path and print the entity-type distribution and relation cardinality counts.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	StatsCmd.Flags().StringArrayVar(&includes, "include", nil, "Glob pattern for schema file names (repeatable)")
}

func runStats(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := config.LoadFromDir(config.DirFor(root))
	if err != nil {
		return err
	}
	finalIncludes := cfg.Include
	if len(includes) > 0 {
		finalIncludes = includes
	}

	extractor := parser.NewExtractor(cfg.Rules())
	set, err := extractor.ExtractDir(cmd.Context(), root, finalIncludes)
	if err != nil {
		return err
	}

	render.Stats(os.Stdout, set)
	return nil
}
