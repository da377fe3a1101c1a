package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiremaphq/wiremap/pkg/layout"
	"github.com/wiremaphq/wiremap/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file path (or base path for multiple formats)
	style      string  // visual style: "simple" or "blueprint"
	curve      string  // wire curve: "bezier" or "smoothstep"
	stepRadius float64 // corner radius for smoothstep wires
	arrowSize  float64 // arrowhead length, 0 disables arrowheads
	headings   bool    // render column headings
	noCache    bool    // bypass the render cache
	refresh    bool    // recompute even when cached
	nodeWidth  float64
	nodeHeight float64
	columnGap  float64
	rowGap     float64
	padding    float64
}

// renderCommand creates the render command for generating diagram outputs.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a mapping document to SVG, PNG, DOT, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], parseFormats(formatsStr), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default), blueprint")
	cmd.Flags().StringVar(&opts.curve, "curve", "", "wire curve: bezier (default), smoothstep")
	cmd.Flags().Float64Var(&opts.stepRadius, "step-radius", 0, "corner radius for smoothstep wires")
	cmd.Flags().Float64Var(&opts.arrowSize, "arrow-size", 0, "arrowhead length (0 for default)")
	cmd.Flags().BoolVar(&opts.headings, "headings", false, "render column headings")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().Float64Var(&opts.nodeWidth, "node-width", 0, "node width in pixels")
	cmd.Flags().Float64Var(&opts.nodeHeight, "node-height", 0, "node height in pixels")
	cmd.Flags().Float64Var(&opts.columnGap, "column-gap", 0, "gap between columns in pixels")
	cmd.Flags().Float64Var(&opts.rowGap, "row-gap", 0, "gap between rows in pixels")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "canvas padding in pixels")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, formats []string, opts *renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Input:      input,
		Refresh:    opts.refresh,
		Formats:    formats,
		Style:      firstNonEmpty(opts.style, cfg.Render.Style),
		Curve:      firstNonEmpty(opts.curve, cfg.Render.Curve),
		StepRadius: firstNonZero(opts.stepRadius, cfg.Render.StepRadius),
		ArrowSize:  firstNonZero(opts.arrowSize, cfg.Render.ArrowSize),
		Headings:   opts.headings,
		Layout: layout.Options{
			NodeWidth:  firstNonZero(opts.nodeWidth, cfg.Layout.NodeWidth),
			NodeHeight: firstNonZero(opts.nodeHeight, cfg.Layout.NodeHeight),
			ColumnGap:  firstNonZero(opts.columnGap, cfg.Layout.ColumnGap),
			RowGap:     firstNonZero(opts.rowGap, cfg.Layout.RowGap),
			Padding:    firstNonZero(opts.padding, cfg.Layout.Padding),
		},
		Logger: c.Logger,
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(cmd.Context(), "Rendering "+input+"...")
	spinner.Start()
	result, err := runner.Execute(cmd.Context(), popts)
	spinner.Stop()
	if err != nil {
		if ctxErr := cmd.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	prog.done("rendered " + result.Document.Name)

	printSuccess("Rendered %s", result.Document.Name)
	printStats(result.Stats.SourceCount, result.Stats.TargetCount, result.Stats.LinkCount, result.CacheInfo.RenderHit)

	for _, format := range popts.Formats {
		path := outputPath(input, opts.output, format, len(popts.Formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// outputPath derives the output file name for a format.
// With multiple formats the explicit output acts as a base path.
func outputPath(input, output, format string, multi bool) string {
	if output != "" {
		if !multi {
			return output
		}
		base := strings.TrimSuffix(output, filepath.Ext(output))
		return base + "." + format
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	path := base + "." + format
	if path == input {
		// Never overwrite the input document (json renders of foo.json).
		path = base + ".out." + format
	}
	return path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
