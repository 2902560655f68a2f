package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/diagram/catalog"
	"github.com/pentagongym/gymdiag/pkg/errors"
	"github.com/pentagongym/gymdiag/pkg/pipeline"
)

// generateFlags holds the command-line flags for the generate command.
// Only flags the user set override the configuration file.
type generateFlags struct {
	config      string   // configuration file path
	output      string   // output directory
	formats     string   // comma-separated formats
	dpi         float64  // PNG resolution
	noTimestamp bool     // omit the "Generated:" footer
	engine      string   // native or rsvg
	specs       []string // diagram table files (.toml/.json)
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [names...]",
		Short: "Render diagrams to PNG and PDF",
		Long: `Render diagrams into the output directory.

With no names every catalog diagram is generated. Names select catalog
diagrams; --spec adds diagram tables read from TOML or JSON files. A
table name may appear only once per run.

PDF text uses the Helvetica core font, which covers cp1252 only (Latin
letters, £, €, bullets and guillemets). Other characters, such as arrows,
are drawn as '.' in the PDF and reported in a warning; PNG and SVG show
them as written.`,
		Example: `  gymdiag generate
  gymdiag generate pentagon_gym_erd -f png,pdf,svg --dpi 300
  gymdiag generate --spec extra.toml -o figures`,
		ValidArgsFunction: completeDiagramNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args, flags.specs, opts)
		},
	}

	cmd.Flags().StringVar(&flags.config, "config", "", "configuration file (default ~/.config/gymdiag/config.toml)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", pipeline.DefaultOutputDir, "output directory")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "png,pdf", "output format(s): png, pdf, svg, json, dot, nodelink (comma-separated)")
	cmd.Flags().Float64Var(&flags.dpi, "dpi", pipeline.DefaultDPI, "PNG resolution")
	cmd.Flags().BoolVar(&flags.noTimestamp, "no-timestamp", false, "omit the generation timestamp for reproducible output")
	cmd.Flags().StringVar(&flags.engine, "engine", pipeline.DefaultEngine, "PNG/PDF engine: native, rsvg")
	cmd.Flags().StringArrayVar(&flags.specs, "spec", nil, "diagram table file (.toml or .json), repeatable")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("engine", cobra.FixedCompletions(
		[]string{pipeline.EngineNative, pipeline.EngineRsvg}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.MarkFlagFilename("spec", "toml", "json")
	_ = cmd.MarkFlagFilename("config", "toml")
	_ = cmd.MarkFlagDirname("output")

	return cmd
}

// options merges the configuration file with the flags the user set.
func (f *generateFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := cfg.Options()

	changed := cmd.Flags().Changed
	if changed("output") {
		opts.OutputDir = f.output
	}
	if changed("format") {
		opts.Formats = pipeline.ParseFormats(f.formats)
		if len(opts.Formats) == 0 {
			return opts, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
		}
	}
	if changed("dpi") {
		opts.DPI = f.dpi
	}
	if changed("engine") {
		opts.Engine = f.engine
	}
	if f.noTimestamp {
		opts.Timestamp = false
	}
	return opts, nil
}

// selectDiagrams resolves catalog names and diagram files. With neither,
// the whole catalog is selected. Repeated catalog names are collapsed; a
// file table that reuses a selected name is left for the runner to reject.
func selectDiagrams(names, specs []string) ([]*diagram.Diagram, error) {
	var diagrams []*diagram.Diagram
	if len(names) > 0 || len(specs) == 0 {
		selected, err := catalog.Select(uniqueNames(names))
		if err != nil {
			return nil, err
		}
		diagrams = append(diagrams, selected...)
	}
	for _, path := range specs {
		loaded, err := diagram.Load(path)
		if err != nil {
			return nil, err
		}
		diagrams = append(diagrams, loaded...)
	}
	return diagrams, nil
}

// uniqueNames drops repeated names, keeping the first occurrence.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// runGenerate renders the selected diagrams and prints one status line per
// diagram. It returns an error when any diagram failed so the process exits
// non-zero.
func (c *CLI) runGenerate(ctx context.Context, names, specs []string, opts pipeline.Options) error {
	diagrams, err := selectDiagrams(names, specs)
	if err != nil {
		return err
	}
	return c.generate(ctx, diagrams, opts)
}

func (c *CLI) generate(ctx context.Context, diagrams []*diagram.Diagram, opts pipeline.Options) error {
	if opts.Logger == nil {
		opts.Logger = c.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	c.Logger.Debug("generate", "options", opts.String())

	prog := newProgress(c.Logger)
	printInfo("Generating %d diagrams into %s", len(diagrams), StyleHighlight.Render(opts.OutputDir))

	opts.Progress = printResult
	restore := useSpinner(c.verbose)
	report, err := c.newRunner().Generate(ctx, diagrams, opts)
	restore()
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("run %s finished", report.RunID[:8]))

	printNewline()
	failed := report.Failed()
	if len(failed) > 0 {
		printError("%d of %d diagrams failed", len(failed), len(report.Diagrams))
		return report.Err()
	}
	printSuccess("Generated %d diagrams, %d files (%s)", len(report.Diagrams), len(report.Files()), prog.elapsed())
	printNextStep("Review the output", fmt.Sprintf("%s summary %s", appName, report.OutputDir))
	return nil
}

// printResult is the pipeline progress callback.
func printResult(r pipeline.DiagramResult) {
	if r.Err != nil {
		printError("%s", r.Name)
		printDetail("%s", errors.UserMessage(r.Err))
		return
	}
	printSuccess("%s %s", r.Name, StyleDim.Render(r.Duration.Round(time.Millisecond).String()))
	for _, f := range r.Files {
		printFile(f.Path, f.Size)
	}
}

// completeDiagramNames offers the catalog names not already on the line.
func completeDiagramNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, name := range catalog.Names() {
		if !slices.Contains(args, name) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the last entry of a comma-separated format list.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	var out []string
	for _, f := range pipeline.FormatNames() {
		if !strings.Contains(","+prefix, ","+f+",") {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
