package diagram

import (
	"slices"
	"strings"
	"testing"

	"github.com/pentagongym/gymdiag/pkg/errors"
)

func sample() *Diagram {
	return &Diagram{
		Name:   "sample",
		Kind:   KindClass,
		Title:  "Sample",
		Width:  100,
		Height: 80,
		Boxes: []Box{
			{Label: "User", Kind: BoxClass, X: 10, Y: 40, W: 20, H: 20, Category: "class",
				Attributes: []string{"- id: String"}, Methods: []string{"+ login(): Token"}},
			{Label: "Member", Kind: BoxClass, X: 10, Y: 5, W: 20, H: 20, Category: "class"},
			{Label: "Repository", Kind: BoxClass, X: 60, Y: 40, W: 20, H: 20, Category: "interface"},
		},
		Relationships: []Relationship{
			{From: "Member", To: "User", Kind: RelInheritance},
			{From: "User", To: "Repository", Kind: RelDependency},
			{From: "Member", To: "Repository", Kind: RelDependency},
		},
		Legend:  &Legend{X: 80, Y: 2, W: 18, H: 10},
		Palette: map[string]string{"class": "#F8F9FA"},
	}
}

func TestBoxLookup(t *testing.T) {
	d := sample()

	b, ok := d.Box("Member")
	if !ok || b.Y != 5 {
		t.Fatalf("Box(Member) = %+v, %v", b, ok)
	}
	if _, ok := d.Box("Ghost"); ok {
		t.Error("Box(Ghost) should not be found")
	}

	r := b.Rect()
	if r.X != 10 || r.Y != 5 || r.W != 20 || r.H != 20 {
		t.Errorf("Rect() = %+v", r)
	}
}

func TestParticipantLookup(t *testing.T) {
	d := sample()
	if _, ok := d.Participant("User"); ok {
		t.Error("diagram without sequence should have no participants")
	}

	d.Sequence = &Sequence{
		HeadY: 60, Bottom: 5,
		Participants: []Participant{{Name: "User", X: 10}, {Name: "API", X: 40}},
	}
	p, ok := d.Participant("API")
	if !ok || p.X != 40 {
		t.Errorf("Participant(API) = %+v, %v", p, ok)
	}
}

func TestCategories(t *testing.T) {
	d := sample()
	d.Sequence = &Sequence{Participants: []Participant{
		{Name: "A", Category: "actor"},
		{Name: "B", Category: "class"},
	}}

	got := d.Categories()
	want := []string{"class", "interface", "actor"}
	if !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestRelKindsUsed(t *testing.T) {
	got := sample().RelKindsUsed()
	want := []RelKind{RelInheritance, RelDependency}
	if !slices.Equal(got, want) {
		t.Errorf("RelKindsUsed() = %v, want %v", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := sample()
	d.Sequence = &Sequence{HeadY: 60, Participants: []Participant{{Name: "A"}}}
	c := d.Clone()

	c.Boxes[0].Attributes[0] = "changed"
	c.Boxes[1].Label = "changed"
	c.Relationships[0].Kind = RelAssociation
	c.Sequence.Participants[0].Name = "changed"
	c.Legend.Title = "changed"
	c.Palette["class"] = "#000000"

	if d.Boxes[0].Attributes[0] != "- id: String" {
		t.Error("clone shares attribute slices")
	}
	if d.Boxes[1].Label != "Member" {
		t.Error("clone shares boxes")
	}
	if d.Relationships[0].Kind != RelInheritance {
		t.Error("clone shares relationships")
	}
	if d.Sequence.Participants[0].Name != "A" {
		t.Error("clone shares participants")
	}
	if d.Legend.Title != "" {
		t.Error("clone shares legend")
	}
	if d.Palette["class"] != "#F8F9FA" {
		t.Error("clone shares palette")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Diagram)
		wantErr string
	}{
		{"valid", func(d *Diagram) {}, ""},
		{"bad name", func(d *Diagram) { d.Name = "../erd" }, "path"},
		{"unknown kind", func(d *Diagram) { d.Kind = "gantt" }, "unknown diagram kind"},
		{"zero space", func(d *Diagram) { d.Width = 0 }, "coordinate space"},
		{"negative figure", func(d *Diagram) { d.FigureWidth = -1 }, "figure width"},
		{"duplicate box", func(d *Diagram) { d.Boxes[1].Label = "User" }, "duplicate box"},
		{"empty label", func(d *Diagram) { d.Boxes[2].Label = "" }, "no label"},
		{"zero size box", func(d *Diagram) { d.Boxes[0].W = 0 }, "positive size"},
		{"unknown box kind", func(d *Diagram) { d.Boxes[0].Kind = "cloud" }, "unknown kind"},
		{"dangling relationship", func(d *Diagram) { d.Relationships[0].To = "Ghost" }, `unknown box "Ghost"`},
		{"self relationship", func(d *Diagram) { d.Relationships[0].To = "Member" }, "to itself"},
		{"unknown rel kind", func(d *Diagram) { d.Relationships[0].Kind = "friend" }, "unknown kind"},
		{"sequence without section", func(d *Diagram) { d.Kind = KindSequence }, "no sequence section"},
		{"empty legend", func(d *Diagram) { d.Legend.W = 0 }, "legend"},
		{"bad palette", func(d *Diagram) { d.Palette["class"] = "blue" }, "palette"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sample()
			tt.mutate(d)
			err := d.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	d := sample()
	d.Width = -1
	d.Boxes[0].W = 0
	d.Relationships[0].To = "Ghost"

	err := d.Validate()
	if !errors.Is(err, errors.ErrCodeInvalidDiagram) {
		t.Fatalf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidDiagram)
	}
	if !strings.Contains(err.Error(), "3 problems") {
		t.Errorf("Validate() = %q, want 3 problems", err.Error())
	}
}

func sequenceSample() *Diagram {
	return &Diagram{
		Name: "seq", Kind: KindSequence, Width: 100, Height: 70,
		Sequence: &Sequence{
			HeadY: 60, Bottom: 5,
			Participants: []Participant{{Name: "User", X: 10}, {Name: "API", X: 40}},
			Messages: []Message{
				{From: "User", To: "API", Y: 55, Text: "POST /login", Kind: MsgSync},
				{From: "API", To: "API", Y: 50, Text: "hash()", Kind: MsgSelf},
				{From: "API", To: "User", Y: 45, Text: "200 OK", Kind: MsgReturn},
			},
			Activations: []Activation{{Participant: "API", Top: 55, Height: 10}},
		},
	}
}

func TestValidateSequence(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Sequence)
		wantErr string
	}{
		{"valid", func(s *Sequence) {}, ""},
		{"inverted lifeline", func(s *Sequence) { s.Bottom = 70 }, "below head"},
		{"duplicate participant", func(s *Sequence) { s.Participants[1].Name = "User" }, "duplicate participant"},
		{"unnamed participant", func(s *Sequence) { s.Participants[1].Name = "" }, "no name"},
		{"unknown sender", func(s *Sequence) { s.Messages[0].From = "Ghost" }, `unknown participant "Ghost"`},
		{"unknown message kind", func(s *Sequence) { s.Messages[0].Kind = "carrier-pigeon" }, "unknown kind"},
		{"self message between two", func(s *Sequence) { s.Messages[1].To = "User" }, "same participant"},
		{"activation on ghost", func(s *Sequence) { s.Activations[0].Participant = "Ghost" }, "activation"},
		{"zero activation", func(s *Sequence) { s.Activations[0].Height = 0 }, "positive height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sequenceSample()
			tt.mutate(d.Sequence)
			err := d.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
