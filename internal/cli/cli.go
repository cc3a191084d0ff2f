// Package cli implements the pdfimpose command-line interface.
//
// It provides three conversion commands, one per imposition direction:
//
//   - bookletize: impose a linear PDF as a saddle-stitch booklet
//   - linearize: revert a booklet PDF to linear page order
//   - reduce: place several pages on one sheet without reordering
//
// Flags not given on the command line fall back to an optional TOML
// defaults file, then to the built-in defaults (2x1 layout, A4 paper,
// short-edge flip). All commands support --verbose (-v) for debug-level
// logging of conversion progress.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string displayed by --version. It is
// typically called by the main package with a value injected via ldflags.
func SetVersion(v string) {
	version = v
}

// Execute runs the pdfimpose CLI and returns an error if any command
// fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "pdfimpose",
		Short: "pdfimpose rearranges PDF pages for booklet printing",
		Long: `pdfimpose converts PDF documents between page layouts: it imposes
linear documents as saddle-stitch booklets, reverts booklets to linear
page order, and places several pages on one sheet (N-up).`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "defaults file (TOML)")

	root.AddCommand(newBookletizeCmd(&configPath))
	root.AddCommand(newLinearizeCmd(&configPath))
	root.AddCommand(newReduceCmd(&configPath))

	return root.ExecuteContext(context.Background())
}
