package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvillar/pdfimpose"
	"github.com/lvillar/pdfimpose/fpdf"
)

// convertOpts holds the flags shared by the three conversion commands.
type convertOpts struct {
	layout    string // grid of input pages per sheet, "WxH"
	paper     string // output paper format name
	flip      string // two-sided flip edge: "short" or "long"
	copyPages bool   // fill each sheet with copies of the same page group
	output    string // output file path; empty derives it from the input
	force     bool   // overwrite the output file without asking
}

func newBookletizeCmd(configPath *string) *cobra.Command {
	return newConvertCmd(configPath, "bookletize",
		"Impose a linear PDF as a saddle-stitch booklet",
		(*pdfimpose.Converter).Bookletize)
}

func newLinearizeCmd(configPath *string) *cobra.Command {
	return newConvertCmd(configPath, "linearize",
		"Revert a booklet PDF to linear page order",
		(*pdfimpose.Converter).Linearize)
}

func newReduceCmd(configPath *string) *cobra.Command {
	return newConvertCmd(configPath, "reduce",
		"Place several pages on one sheet without reordering",
		(*pdfimpose.Converter).Reduce)
}

func newConvertCmd(configPath *string, use, short string, run func(*pdfimpose.Converter) error) *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   use + " <input.pdf>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], &opts, *configPath, run)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", `grid of input pages per sheet, "WxH" (default "2x1")`)
	cmd.Flags().StringVarP(&opts.paper, "paper", "p", "", `output paper format: A3, A4, A5, Tabloid, Letter, Legal (default "A4")`)
	cmd.Flags().StringVar(&opts.flip, "flip", "", `two-sided flip edge: short or long (default "short")`)
	cmd.Flags().BoolVar(&opts.copyPages, "copy-pages", false, "fill each sheet with copies of the same page group")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>-conv.pdf)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite the output file without asking")

	return cmd
}

func runConvert(cmd *cobra.Command, inputPath string, opts *convertOpts, configPath string, run func(*pdfimpose.Converter) error) error {
	logger := loggerFromContext(cmd.Context())

	def, err := loadDefaults(configPath)
	if err != nil {
		return err
	}
	if opts.layout == "" {
		opts.layout = def.Layout
	}
	if opts.paper == "" {
		opts.paper = def.Paper
	}
	if opts.flip == "" {
		opts.flip = def.Flip
	}
	if !cmd.Flags().Changed("copy-pages") {
		opts.copyPages = def.CopyPages
	}

	flip, err := parseFlip(opts.flip)
	if err != nil {
		return err
	}

	cfg, err := pdfimpose.NewConfig(
		pdfimpose.WithLayout(opts.layout),
		pdfimpose.WithPageFormat(opts.paper),
		pdfimpose.WithFlip(flip),
		pdfimpose.WithCopyPages(opts.copyPages),
		pdfimpose.WithProgress(func(msg string, progress float64) {
			logger.Debug(msg, "progress", fmt.Sprintf("%.0f%%", progress*100))
		}),
	)
	if err != nil {
		return err
	}

	confirm := confirmOverwrite(cmd)
	if opts.force {
		confirm = nil
	}
	doc, err := fpdf.OpenFile(inputPath, opts.output, confirm)
	if err != nil {
		return err
	}
	if err := run(pdfimpose.NewConverter(doc, doc, cfg)); err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = fpdf.DefaultOutputPath(inputPath)
	}
	logger.Info("conversion finished", "output", outputPath)
	return nil
}

// parseFlip maps the --flip flag to the library enum.
func parseFlip(s string) (pdfimpose.TwoSidedFlip, error) {
	switch strings.ToLower(s) {
	case "", "short":
		return pdfimpose.ShortEdgeFlip, nil
	case "long":
		return pdfimpose.LongEdgeFlip, nil
	default:
		return 0, fmt.Errorf(`cli: invalid flip %q (want "short" or "long")`, s)
	}
}

// confirmOverwrite asks on the terminal before overwriting an existing
// output file.
func confirmOverwrite(cmd *cobra.Command) func(string) bool {
	return func(path string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "%s exists, overwrite? [y/N] ", path)
		answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.TrimSpace(strings.ToLower(answer))
		return answer == "y" || answer == "yes"
	}
}
