// Package diagram defines the diagram spec: the static table of boxes,
// relationships and sequence messages that describes one figure.
//
// A [Diagram] is plain data. It is built from a literal table (see the
// catalog subpackage) or loaded from TOML/JSON, validated once, handed to
// the renderer and discarded. Coordinates are arbitrary per-diagram units
// with y growing upward; boxes are anchored at their lower-left corner.
package diagram

import (
	"slices"

	"github.com/pentagongym/gymdiag/pkg/geom"
)

// Kind identifies the family of a diagram. It selects legend defaults;
// the renderer itself draws every kind with the same primitives.
type Kind string

const (
	KindClass        Kind = "class"
	KindERD          Kind = "erd"
	KindArchitecture Kind = "architecture"
	KindLayered      Kind = "layered"
	KindSequence     Kind = "sequence"
)

// Kinds lists every supported diagram kind.
var Kinds = []Kind{KindClass, KindERD, KindArchitecture, KindLayered, KindSequence}

// BoxKind selects how a box is drawn.
type BoxKind string

const (
	BoxClass     BoxKind = "class"     // UML class with name, attribute and method compartments
	BoxEntity    BoxKind = "entity"    // ERD entity with PK/FK highlighted rows
	BoxComponent BoxKind = "component" // filled component with bold title and bullet lines
	BoxLayer     BoxKind = "layer"     // wide band holding component chips
	BoxExternal  BoxKind = "external"  // dashed external system
	BoxBanner    BoxKind = "banner"    // single centred bold line
	BoxNote      BoxKind = "note"      // folded-corner annotation
)

// BoxKinds lists every supported box kind.
var BoxKinds = []BoxKind{BoxClass, BoxEntity, BoxComponent, BoxLayer, BoxExternal, BoxBanner, BoxNote}

// RelKind is the semantic kind of a relationship line; it decides the
// terminator drawn at each end.
type RelKind string

const (
	RelAssociation   RelKind = "association"   // open arrow at To
	RelInheritance   RelKind = "inheritance"   // hollow triangle at To (the parent)
	RelRealization   RelKind = "realization"   // dashed, hollow triangle at To
	RelComposition   RelKind = "composition"   // filled diamond at From (the owner)
	RelAggregation   RelKind = "aggregation"   // hollow diamond at From (the whole)
	RelDependency    RelKind = "dependency"    // dashed, open arrow at To
	RelRelation      RelKind = "relation"      // ERD line, cardinality at the midpoint
	RelBidirectional RelKind = "bidirectional" // open arrows at both ends
)

// RelKinds lists every supported relationship kind.
var RelKinds = []RelKind{
	RelAssociation, RelInheritance, RelRealization, RelComposition,
	RelAggregation, RelDependency, RelRelation, RelBidirectional,
}

// MessageKind is the kind of a sequence diagram message.
type MessageKind string

const (
	MsgSync   MessageKind = "sync"   // solid line, filled head
	MsgAsync  MessageKind = "async"  // solid line, open head
	MsgReturn MessageKind = "return" // dashed line, open head
	MsgSelf   MessageKind = "self"   // loop back onto the sender
)

// MessageKinds lists every supported message kind.
var MessageKinds = []MessageKind{MsgSync, MsgAsync, MsgReturn, MsgSelf}

// Diagram is one diagram spec: everything needed to render a figure.
type Diagram struct {
	Name        string  `json:"name" toml:"name"`
	Kind        Kind    `json:"kind" toml:"kind"`
	Title       string  `json:"title" toml:"title"`
	Width       float64 `json:"width" toml:"width"`
	Height      float64 `json:"height" toml:"height"`
	FigureWidth float64 `json:"figure_width,omitempty" toml:"figure_width"` // inches

	Boxes         []Box          `json:"boxes,omitempty" toml:"boxes"`
	Relationships []Relationship `json:"relationships,omitempty" toml:"relationships"`
	Sequence      *Sequence      `json:"sequence,omitempty" toml:"sequence"`
	Legend        *Legend        `json:"legend,omitempty" toml:"legend"`

	Timestamp bool              `json:"timestamp,omitempty" toml:"timestamp"`
	Palette   map[string]string `json:"palette,omitempty" toml:"palette"` // category -> fill colour
}

// Box is one entity, class or component rectangle.
type Box struct {
	Label      string   `json:"label" toml:"label"`
	Kind       BoxKind  `json:"kind" toml:"kind"`
	X          float64  `json:"x" toml:"x"`
	Y          float64  `json:"y" toml:"y"`
	W          float64  `json:"w" toml:"w"`
	H          float64  `json:"h" toml:"h"`
	Category   string   `json:"category,omitempty" toml:"category"`
	Stereotype string   `json:"stereotype,omitempty" toml:"stereotype"`
	Abstract   bool     `json:"abstract,omitempty" toml:"abstract"`
	Attributes []string `json:"attributes,omitempty" toml:"attributes"`
	Methods    []string `json:"methods,omitempty" toml:"methods"`
}

// Rect returns the declared rectangle of the box.
func (b Box) Rect() geom.Rect { return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// Relationship connects two boxes by label.
type Relationship struct {
	From        string  `json:"from" toml:"from"`
	To          string  `json:"to" toml:"to"`
	Kind        RelKind `json:"kind" toml:"kind"`
	Label       string  `json:"label,omitempty" toml:"label"`
	Cardinality string  `json:"cardinality,omitempty" toml:"cardinality"`
	FromMult    string  `json:"from_mult,omitempty" toml:"from_mult"`
	ToMult      string  `json:"to_mult,omitempty" toml:"to_mult"`
	Dashed      bool    `json:"dashed,omitempty" toml:"dashed"`
}

// Sequence holds the lifelines and messages of a sequence diagram.
type Sequence struct {
	HeadY        float64       `json:"head_y" toml:"head_y"`
	Bottom       float64       `json:"bottom" toml:"bottom"`
	Participants []Participant `json:"participants" toml:"participants"`
	Messages     []Message     `json:"messages" toml:"messages"`
	Activations  []Activation  `json:"activations,omitempty" toml:"activations"`
}

// Participant is a lifeline owner placed at a fixed x.
type Participant struct {
	Name     string  `json:"name" toml:"name"`
	X        float64 `json:"x" toml:"x"`
	Category string  `json:"category,omitempty" toml:"category"`
}

// Message is one arrow between lifelines at height Y.
type Message struct {
	From string      `json:"from" toml:"from"`
	To   string      `json:"to" toml:"to"`
	Y    float64     `json:"y" toml:"y"`
	Text string      `json:"text" toml:"text"`
	Kind MessageKind `json:"kind" toml:"kind"`
}

// Activation is an execution bar on a lifeline, hanging down from Top.
type Activation struct {
	Participant string  `json:"participant" toml:"participant"`
	Top         float64 `json:"top" toml:"top"`
	Height      float64 `json:"height" toml:"height"`
}

// Legend is the key box. When Items is empty the renderer derives them
// from the categories, relationship kinds or key markers the diagram uses.
type Legend struct {
	X     float64      `json:"x" toml:"x"`
	Y     float64      `json:"y" toml:"y"`
	W     float64      `json:"w" toml:"w"`
	H     float64      `json:"h" toml:"h"`
	Title string       `json:"title,omitempty" toml:"title"`
	Items []LegendItem `json:"items,omitempty" toml:"items"`
}

// LegendItem is one entry in a legend. Exactly one of Category, Rel or
// Color identifies the swatch.
type LegendItem struct {
	Label    string  `json:"label" toml:"label"`
	Category string  `json:"category,omitempty" toml:"category"`
	Rel      RelKind `json:"rel,omitempty" toml:"rel"`
	Color    string  `json:"color,omitempty" toml:"color"`
}

// Box returns the box with the given label.
func (d *Diagram) Box(label string) (Box, bool) {
	i := slices.IndexFunc(d.Boxes, func(b Box) bool { return b.Label == label })
	if i < 0 {
		return Box{}, false
	}
	return d.Boxes[i], true
}

// Participant returns the sequence participant with the given name.
func (d *Diagram) Participant(name string) (Participant, bool) {
	if d.Sequence == nil {
		return Participant{}, false
	}
	i := slices.IndexFunc(d.Sequence.Participants, func(p Participant) bool { return p.Name == name })
	if i < 0 {
		return Participant{}, false
	}
	return d.Sequence.Participants[i], true
}

// Categories returns the distinct box and participant categories in
// declaration order.
func (d *Diagram) Categories() []string {
	var out []string
	add := func(c string) {
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	for _, b := range d.Boxes {
		add(b.Category)
	}
	if d.Sequence != nil {
		for _, p := range d.Sequence.Participants {
			add(p.Category)
		}
	}
	return out
}

// RelKindsUsed returns the distinct relationship kinds in declaration order.
func (d *Diagram) RelKindsUsed() []RelKind {
	var out []RelKind
	for _, r := range d.Relationships {
		if !slices.Contains(out, r.Kind) {
			out = append(out, r.Kind)
		}
	}
	return out
}

// Clone returns a deep copy of d, so callers may adjust a catalog table
// without affecting other users.
func (d *Diagram) Clone() *Diagram {
	c := *d
	c.Boxes = make([]Box, len(d.Boxes))
	for i, b := range d.Boxes {
		b.Attributes = slices.Clone(b.Attributes)
		b.Methods = slices.Clone(b.Methods)
		c.Boxes[i] = b
	}
	c.Relationships = slices.Clone(d.Relationships)
	if d.Sequence != nil {
		s := *d.Sequence
		s.Participants = slices.Clone(s.Participants)
		s.Messages = slices.Clone(s.Messages)
		s.Activations = slices.Clone(s.Activations)
		c.Sequence = &s
	}
	if d.Legend != nil {
		l := *d.Legend
		l.Items = slices.Clone(l.Items)
		c.Legend = &l
	}
	if d.Palette != nil {
		c.Palette = make(map[string]string, len(d.Palette))
		for k, v := range d.Palette {
			c.Palette[k] = v
		}
	}
	return &c
}
