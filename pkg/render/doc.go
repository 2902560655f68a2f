// Package render turns diagram specs into device-independent scenes.
//
// # Overview
//
// [Build] lays out one [diagram.Diagram] and returns a [Scene]: a flat
// display list of rectangles, polylines, polygons and text in diagram
// units. The sink subpackage draws a scene to PNG, PDF or SVG, so every
// output format shares one layout.
//
//	scene, err := render.Build(d, render.WithTimestamp(time.Now()))
//	pdf, err := sink.PDF(scene)
//
// # Layout
//
// Boxes are drawn at their declared position and width. When the text of a
// box needs more room than its declared height, the box grows downward
// with its top edge fixed. Relationship lines are routed between the grown
// boxes: each end sits where the line between the box centres crosses the
// box outline (see [geom.Connect]), and the terminator for the
// relationship kind is drawn there.
//
// # Text
//
// Text is measured with the Go fonts (see the fonts package). Class
// compartment lines longer than 30 characters are cut to 27 followed by
// "...", and any text wider than its box is shortened the same way.
//
// # Colours
//
// [DefaultPalette] holds the swatch for every category used by the
// catalog. A diagram may override fills by category; borders and text
// colour are derived from the fill with go-colorful.
//
// [geom.Connect]: github.com/pentagongym/gymdiag/pkg/geom.Connect
package render
