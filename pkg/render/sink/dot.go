package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/render"
)

// ToDOT converts a diagram to Graphviz DOT for a node-link overview. Boxes
// become nodes filled with their category colour and relationships become
// edges styled by kind. Sequence diagrams map participants to nodes and
// messages to numbered edges. Declared positions are ignored; Graphviz
// does the layout.
func ToDOT(d *diagram.Diagram, p render.Palette) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", d.Name)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	if d.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", strings.ReplaceAll(d.Title, "\n", " "))
	}
	buf.WriteString("\n")

	if d.Sequence != nil {
		sequenceDOT(&buf, d, p)
	} else {
		for _, b := range d.Boxes {
			if b.Kind == diagram.BoxBanner {
				continue
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", b.Label, strings.Join(nodeAttrs(p.Lookup(b.Category), b.Kind == diagram.BoxExternal), ", "))
		}
		buf.WriteString("\n")
		for _, r := range d.Relationships {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", r.From, r.To, strings.Join(edgeAttrs(r), ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func sequenceDOT(buf *bytes.Buffer, d *diagram.Diagram, p render.Palette) {
	for _, part := range d.Sequence.Participants {
		fmt.Fprintf(buf, "  %q [%s];\n", part.Name, strings.Join(nodeAttrs(p.Lookup(part.Category), false), ", "))
	}
	buf.WriteString("\n")
	for i, m := range d.Sequence.Messages {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%d. %s", i+1, m.Text))}
		if m.Kind == diagram.MsgReturn {
			attrs = append(attrs, "style=dashed", "arrowhead=vee")
		}
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", m.From, m.To, strings.Join(attrs, ", "))
	}
}

func nodeAttrs(sw render.Swatch, dashed bool) []string {
	style := "rounded,filled"
	if dashed {
		style += ",dashed"
	}
	return []string{
		fmt.Sprintf("style=%q", style),
		fmt.Sprintf("fillcolor=%q", sw.Fill),
		fmt.Sprintf("color=%q", sw.Border),
		fmt.Sprintf("fontcolor=%q", sw.Text),
	}
}

func edgeAttrs(r diagram.Relationship) []string {
	attrs := []string{fmt.Sprintf("color=%q", render.RelColors[r.Kind])}
	if label := strings.TrimSpace(r.Cardinality + " " + r.Label); label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", label))
	}
	switch r.Kind {
	case diagram.RelInheritance:
		attrs = append(attrs, "arrowhead=empty")
	case diagram.RelRealization:
		attrs = append(attrs, "arrowhead=empty", "style=dashed")
	case diagram.RelComposition:
		attrs = append(attrs, "dir=both", "arrowtail=diamond", "arrowhead=none")
	case diagram.RelAggregation:
		attrs = append(attrs, "dir=both", "arrowtail=odiamond", "arrowhead=none")
	case diagram.RelDependency:
		attrs = append(attrs, "arrowhead=vee", "style=dashed")
	case diagram.RelRelation:
		attrs = append(attrs, "arrowhead=none")
	case diagram.RelBidirectional:
		attrs = append(attrs, "dir=both", "arrowhead=vee", "arrowtail=vee")
	default:
		attrs = append(attrs, "arrowhead=vee")
	}
	if r.Dashed && r.Kind != diagram.RelRealization && r.Kind != diagram.RelDependency {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderNodelink lays out a DOT graph with Graphviz and returns SVG.
func RenderNodelink(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz root element to a zero-origin
// viewBox with matching width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
