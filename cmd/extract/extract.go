package extract

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/drizzledoc/drizzledoc/internal/config"
	"github.com/drizzledoc/drizzledoc/internal/parser"
	"github.com/drizzledoc/drizzledoc/internal/render"
)

var (
	format    string
	out       string
	multiFile bool
	includes  []string
)

var ExtractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Extract the entity model from drizzle schema files",
	Long:  "Parse drizzle schema files under the given path (default: current directory) and render the extracted entity-relationship model.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

func init() {
	ExtractCmd.Flags().StringVar(&format, "format", "", "Output format: markdown, json, or table (default: markdown)")
	ExtractCmd.Flags().StringVar(&out, "out", "", "Output file or directory (default: stdout)")
	ExtractCmd.Flags().BoolVar(&multiFile, "multi-file", false, "Write one markdown file per source document (requires --out)")
	ExtractCmd.Flags().StringArrayVar(&includes, "include", nil, "Glob pattern for schema file names (repeatable)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := config.LoadFromDir(config.DirFor(root))
	if err != nil {
		return err
	}

	// Flags win over the config file.
	finalFormat := cfg.Format
	if format != "" {
		finalFormat = format
	}
	finalOut := cfg.Out
	if out != "" {
		finalOut = out
	}
	finalMulti := cfg.MultiFile || multiFile
	finalIncludes := cfg.Include
	if len(includes) > 0 {
		finalIncludes = includes
	}

	extractor := parser.NewExtractor(cfg.Rules())
	set, err := extractor.ExtractDir(cmd.Context(), root, finalIncludes)
	if err != nil {
		return err
	}

	if finalMulti {
		if finalOut == "" {
			fmt.Fprintln(os.Stderr, "Warning: --multi-file requires --out to be specified. Fallback to single-file mode.")
		} else {
			return render.WriteMultiFile(finalOut, set)
		}
	}

	var w io.Writer = os.Stdout
	if finalOut != "" {
		f, err := os.Create(finalOut)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", finalOut, err)
		}
		defer f.Close()
		w = f
	}

	switch finalFormat {
	case "", "markdown":
		return render.NewMarkdownFormatter(w).Format(set)
	case "json":
		return render.NewJSONFormatter(w).Format(set)
	case "table":
		return render.NewTableFormatter(w).Format(set)
	default:
		return fmt.Errorf("unknown format %q (expected markdown, json, or table)", finalFormat)
	}
}
