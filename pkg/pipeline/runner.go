package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/errors"
	"github.com/pentagongym/gymdiag/pkg/observability"
)

// Runner executes generation runs.
//
// The Runner is stateless except for the logger - it doesn't store
// results between runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// File is one written artifact.
type File struct {
	Format string
	Path   string
	Size   int64
}

// DiagramResult is the outcome of one diagram.
type DiagramResult struct {
	Name     string
	Kind     diagram.Kind
	Files    []File
	Duration time.Duration
	Err      error
}

// Report summarises a run.
type Report struct {
	RunID     string
	OutputDir string
	Started   time.Time
	Duration  time.Duration
	Diagrams  []DiagramResult
}

// Failed returns the diagrams that did not render completely.
func (r *Report) Failed() []DiagramResult {
	var out []DiagramResult
	for _, d := range r.Diagrams {
		if d.Err != nil {
			out = append(out, d)
		}
	}
	return out
}

// Files returns every file written in the run.
func (r *Report) Files() []File {
	var out []File
	for _, d := range r.Diagrams {
		out = append(out, d.Files...)
	}
	return out
}

// Err joins the per-diagram errors, or returns nil when every diagram
// succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, d := range r.Failed() {
		errs = append(errs, d.Err)
	}
	return errors.Join(errors.ErrCodeRenderFailed, errs)
}

// Generate renders each diagram in turn and writes its files into
// opts.OutputDir, creating the directory if needed. A diagram that fails
// is logged and recorded in the report; the run continues with the next
// one. The returned error is non-nil only when the run could not start or
// ctx was cancelled, in which case the partial report is still returned.
func (r *Runner) Generate(ctx context.Context, diagrams []*diagram.Diagram, opts Options) (*Report, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := checkUniqueNames(diagrams); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		OutputDir: opts.OutputDir,
		Started:   time.Now(),
	}
	logger := opts.Logger.With("run", report.RunID[:8])
	opts.Logger = logger
	logger.Debug("starting run", "diagrams", len(diagrams), "options", opts.String())

	err := os.MkdirAll(opts.OutputDir, 0o755)
	observability.Output().OnDirCreate(ctx, opts.OutputDir, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", opts.OutputDir)
	}

	observability.Pipeline().OnRunStart(ctx, report.RunID, len(diagrams))
	defer func() {
		report.Duration = time.Since(report.Started)
		observability.Pipeline().OnRunComplete(ctx, report.RunID, len(report.Failed()), report.Duration)
	}()

	for _, d := range diagrams {
		if err := ctx.Err(); err != nil {
			logger.Warn("run cancelled", "remaining", len(diagrams)-len(report.Diagrams))
			return report, err
		}

		res := r.generateOne(ctx, d, opts)
		if res.Err != nil {
			logger.Error("diagram failed", "diagram", res.Name, "err", res.Err)
		} else {
			logger.Debug("generated", "diagram", res.Name, "files", len(res.Files), "duration", res.Duration.Round(time.Millisecond))
		}
		report.Diagrams = append(report.Diagrams, res)
		if opts.Progress != nil {
			opts.Progress(res)
		}
	}
	return report, nil
}

// checkUniqueNames rejects runs where two diagrams would write the same
// output files.
func checkUniqueNames(diagrams []*diagram.Diagram) error {
	seen := make(map[string]int, len(diagrams))
	for i, d := range diagrams {
		if j, ok := seen[d.Name]; ok {
			return errors.New(errors.ErrCodeInvalidName,
				"duplicate diagram name %q (diagrams %d and %d)", d.Name, j+1, i+1)
		}
		seen[d.Name] = i
	}
	return nil
}

func (r *Runner) generateOne(ctx context.Context, d *diagram.Diagram, opts Options) (res DiagramResult) {
	start := time.Now()
	res = DiagramResult{Name: d.Name, Kind: d.Kind}
	observability.Pipeline().OnDiagramStart(ctx, d.Name)
	defer func() {
		res.Duration = time.Since(start)
		observability.Pipeline().OnDiagramComplete(ctx, d.Name, len(res.Files), res.Duration, res.Err)
	}()

	artifacts, err := Render(ctx, d, opts)
	if err != nil {
		res.Err = err
		return res
	}

	for _, a := range artifacts {
		path := filepath.Join(opts.OutputDir, FileName(d.Name, a.Format))
		err := os.WriteFile(path, a.Data, 0o644)
		observability.Output().OnWrite(ctx, path, len(a.Data), err)
		if err != nil {
			res.Err = errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
			return res
		}
		opts.Logger.Debug("wrote file", "path", path, "bytes", len(a.Data))
		res.Files = append(res.Files, File{Format: a.Format, Path: path, Size: int64(len(a.Data))})
	}
	return res
}
