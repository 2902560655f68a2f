package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/diagram/catalog"
	"github.com/pentagongym/gymdiag/pkg/errors"
	"github.com/pentagongym/gymdiag/pkg/observability"
)

// testDPI keeps raster output small so the catalog renders quickly.
const testDPI = 20

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestGenerateCatalog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dissertation_diagrams")
	runner := NewRunner(nil)
	opts := Options{OutputDir: dir, DPI: testDPI}

	report, err := runner.Generate(context.Background(), catalog.All(), opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("report error: %v", err)
	}
	if report.RunID == "" {
		t.Error("missing run ID")
	}

	files := listDir(t, dir)
	if len(files) != 2*len(catalog.Names()) {
		t.Errorf("wrote %d files, want %d: %v", len(files), 2*len(catalog.Names()), files)
	}
	for _, name := range catalog.Names() {
		for _, ext := range []string{".png", ".pdf"} {
			if !slices.Contains(files, name+ext) {
				t.Errorf("missing %s%s", name, ext)
			}
		}
	}
	for _, f := range report.Files() {
		if f.Size <= 0 {
			t.Errorf("%s is empty", f.Path)
		}
	}

	// A second run into the existing directory succeeds and overwrites.
	if _, err := runner.Generate(context.Background(), catalog.All(), opts); err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}
	if got := len(listDir(t, dir)); got != len(files) {
		t.Errorf("second run left %d files, want %d", got, len(files))
	}
}

func TestGenerateContinuesAfterFailure(t *testing.T) {
	broken := &diagram.Diagram{Name: "broken", Kind: diagram.KindERD, Width: 0, Height: 10}
	good, err := catalog.Lookup(catalog.LayeredArchitecture)
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}

	dir := t.TempDir()
	var progress []string
	report, err := NewRunner(nil).Generate(context.Background(), []*diagram.Diagram{broken, good}, Options{
		OutputDir: dir,
		DPI:       testDPI,
		Progress:  func(r DiagramResult) { progress = append(progress, r.Name) },
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(report.Diagrams) != 2 {
		t.Fatalf("report has %d diagrams, want 2", len(report.Diagrams))
	}
	if !errors.Is(report.Diagrams[0].Err, errors.ErrCodeInvalidDiagram) {
		t.Errorf("broken diagram error = %v, want INVALID_DIAGRAM", report.Diagrams[0].Err)
	}
	if report.Diagrams[1].Err != nil || len(report.Diagrams[1].Files) != 2 {
		t.Errorf("good diagram = %+v", report.Diagrams[1])
	}
	if len(report.Failed()) != 1 || report.Err() == nil {
		t.Error("report does not record the failure")
	}
	if !slices.Equal(progress, []string{"broken", catalog.LayeredArchitecture}) {
		t.Errorf("progress = %v", progress)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewRunner(nil).Generate(ctx, catalog.All(), Options{OutputDir: t.TempDir(), DPI: testDPI})
	if err != context.Canceled {
		t.Fatalf("Generate() error = %v, want context.Canceled", err)
	}
	if report == nil || len(report.Diagrams) != 0 {
		t.Errorf("report = %+v, want no diagrams", report)
	}
}

func TestGenerateOutputDirIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewRunner(nil).Generate(context.Background(), catalog.All(), Options{OutputDir: path})
	if !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Errorf("Generate() error = %v, want WRITE_FAILED", err)
	}
}

func TestGenerateDuplicateNames(t *testing.T) {
	erd, err := catalog.Lookup(catalog.ERD)
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	renamed, err := catalog.Lookup(catalog.ClassDiagram)
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	renamed.Name = catalog.ERD

	dir := filepath.Join(t.TempDir(), "out")
	report, err := NewRunner(nil).Generate(context.Background(), []*diagram.Diagram{erd, renamed}, Options{
		OutputDir: dir,
		DPI:       testDPI,
	})
	if !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Fatalf("Generate() error = %v, want INVALID_NAME", err)
	}
	if !strings.Contains(err.Error(), catalog.ERD) {
		t.Errorf("error %q does not name the clash", err)
	}
	if report != nil {
		t.Errorf("report = %+v, want nil", report)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("output directory created for a rejected run")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := func(dir string) Options {
		return Options{OutputDir: dir, Formats: []string{FormatSVG, FormatPDF}}
	}
	a, b := t.TempDir(), t.TempDir()
	runner := NewRunner(nil)
	if _, err := runner.Generate(context.Background(), catalog.All(), opts(a)); err != nil {
		t.Fatal(err)
	}
	if _, err := runner.Generate(context.Background(), catalog.All(), opts(b)); err != nil {
		t.Fatal(err)
	}

	for _, name := range listDir(t, a) {
		x, _ := os.ReadFile(filepath.Join(a, name))
		y, err := os.ReadFile(filepath.Join(b, name))
		if err != nil {
			t.Errorf("%s missing from second run", name)
			continue
		}
		if !bytes.Equal(x, y) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestGenerateTimestamp(t *testing.T) {
	d, err := catalog.Lookup(catalog.ERD)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	fixed := time.Date(2025, 8, 8, 14, 30, 0, 0, time.UTC)
	_, err = NewRunner(nil).Generate(context.Background(), []*diagram.Diagram{d}, Options{
		OutputDir: dir,
		Formats:   []string{FormatSVG},
		Timestamp: true,
		Now:       func() time.Time { return fixed },
	})
	if err != nil {
		t.Fatal(err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, catalog.ERD+".svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "Generated: 2025-08-08 14:30:00") {
		t.Error("timestamp missing from SVG")
	}
}

func TestRenderDataFormats(t *testing.T) {
	d, err := catalog.Lookup(catalog.ClassDiagram)
	if err != nil {
		t.Fatal(err)
	}
	artifacts, err := Render(context.Background(), d, Options{Formats: []string{FormatJSON, FormatDOT}})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(artifacts) != 2 || artifacts[0].Format != FormatJSON || artifacts[1].Format != FormatDOT {
		t.Fatalf("artifacts = %v", artifacts)
	}
	if !bytes.Contains(artifacts[0].Data, []byte(`"name": "`+catalog.ClassDiagram+`"`)) {
		t.Error("JSON export missing diagram name")
	}
	if !bytes.HasPrefix(artifacts[1].Data, []byte("digraph ")) {
		t.Error("DOT export is not a digraph")
	}
}

func TestRenderPDFWarnsOnUnmappableText(t *testing.T) {
	d, err := catalog.Lookup(catalog.LayeredArchitecture)
	if err != nil {
		t.Fatal(err)
	}
	d.Title = "Request → Response"

	var logs bytes.Buffer
	_, err = Render(context.Background(), d, Options{Formats: []string{FormatPDF}, Logger: log.New(&logs)})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	got := logs.String()
	if !strings.Contains(got, "→") || !strings.Contains(got, catalog.LayeredArchitecture) {
		t.Errorf("log = %q, want a warning naming the diagram and →", got)
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	mu       sync.Mutex
	diagrams int
	renders  []string
}

func (h *countingHooks) OnDiagramComplete(context.Context, string, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.diagrams++
}

func (h *countingHooks) OnRenderComplete(_ context.Context, _, format string, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders = append(h.renders, format)
}

func TestGenerateHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	d, err := catalog.Lookup(catalog.RegistrationSequence)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewRunner(nil).Generate(context.Background(), []*diagram.Diagram{d}, Options{
		OutputDir: t.TempDir(),
		Formats:   []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatal(err)
	}
	if hooks.diagrams != 1 || !slices.Equal(hooks.renders, []string{FormatSVG, FormatJSON}) {
		t.Errorf("hooks saw %d diagrams, renders %v", hooks.diagrams, hooks.renders)
	}
}
