// Package sink provides output format renderers for diagram scenes.
//
// # Overview
//
// A "sink" transforms a built [render.Scene] (or, for data exports, the
// [diagram.Diagram] itself) into a final output format:
//
//   - PNG: raster image drawn with fogleman/gg at a fixed DPI
//   - PDF: single-page vector document drawn with go-pdf/fpdf
//   - SVG: deterministic vector graphics written directly
//   - JSON: the diagram table, loadable again with --spec
//   - DOT: Graphviz source for a node-link overview
//   - nodelink: the DOT overview laid out by Graphviz as SVG
//
// # Raster and Vector Output
//
// [RenderPNG] and [RenderPDF] draw the scene natively, with no external
// tools:
//
//	png, err := sink.RenderPNG(scene, sink.WithDPI(300))
//	pdf, err := sink.RenderPDF(scene)
//
// PDFs carry a fixed creation date ([DefaultPDFDate]) unless
// [WithPDFDate] is given, so identical scenes give identical bytes.
//
// # rsvg Engine
//
// [ConvertPDF] and [ConvertPNG] convert the SVG output with rsvg-convert
// instead. These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # Node-link Overview
//
// [ToDOT] ignores the declared positions and lets Graphviz arrange the
// boxes, which is useful to check a table's connectivity at a glance:
//
//	dot := sink.ToDOT(d, render.DefaultPalette)
//	svg, err := sink.RenderNodelink(ctx, dot)
//
// [render.Scene]: github.com/pentagongym/gymdiag/pkg/render.Scene
// [diagram.Diagram]: github.com/pentagongym/gymdiag/pkg/diagram.Diagram
package sink
