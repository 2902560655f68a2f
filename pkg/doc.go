// Package pkg provides the libraries behind gymdiag, the renderer for the
// Pentagon Gymnastics dissertation diagrams.
//
// # Overview
//
// gymdiag turns declarative diagram tables (box positions, labels and
// relationship pairs) into static figures: an entity-relationship diagram,
// a UML class diagram, architecture diagrams and sequence diagrams. Every
// figure is one data table fed through one generic renderer.
//
// # Architecture
//
// The data flow:
//
//	diagram table (catalog, TOML or JSON)
//	         ↓
//	    [diagram] package (validate)
//	         ↓
//	    [render] package (build a scene of shapes, lines and text)
//	         ↓
//	    [render/sink] package (PNG, PDF, SVG, JSON, DOT, Graphviz SVG)
//	         ↓
//	    <output_dir>/<name>.<ext>
//
// # Quick Start
//
// Render one catalog diagram to PNG bytes:
//
//	import (
//	    "github.com/pentagongym/gymdiag/pkg/diagram/catalog"
//	    "github.com/pentagongym/gymdiag/pkg/render"
//	    "github.com/pentagongym/gymdiag/pkg/render/sink"
//	)
//
//	d, _ := catalog.Lookup(catalog.ERD)
//	scene, _ := render.Build(d)
//	png, _ := sink.RenderPNG(scene, sink.WithDPI(300))
//
// Or generate the whole catalog into a directory:
//
//	report, err := pipeline.NewRunner(logger).Generate(ctx, catalog.All(), pipeline.Options{})
//
// # Main Packages
//
// [geom] - Rectangle and point math: where the line from a box's centre
// toward a target crosses the box boundary, plus arrowhead, diamond and
// triangle markers.
//
// [diagram] - The diagram table model, validation and TOML/JSON I/O.
//
// [diagram/catalog] - The seven Pentagon Gymnastics figures as literal tables.
//
// [render] - Scene construction: box layout by kind, relationship
// terminators, lifelines, legends and the optional timestamp footer.
//
// [render/sink] - Output formats. PNG is drawn with gg, PDF with fpdf, SVG
// is written directly, and the Graphviz overview goes through go-graphviz.
//
// [fonts] - Embedded Go fonts for measurement and raster text.
//
// [pipeline] - The validate → build → render → write loop shared by every
// CLI command.
//
// [config] - The optional TOML configuration file.
//
// [errors] - Coded errors (INVALID_DIAGRAM, RENDER_FAILED, ...).
//
// [observability] - Hooks for run, diagram, render and write events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test -short ./pkg/...   # Skip Graphviz rendering
//	go test -run Example ./... # Examples only
//
// [geom]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/geom
// [diagram]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/diagram
// [diagram/catalog]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/diagram/catalog
// [render]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/render/sink
// [fonts]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/config
// [errors]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pentagongym/gymdiag/pkg/observability
package pkg
