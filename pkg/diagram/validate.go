package diagram

import (
	"slices"

	"github.com/pentagongym/gymdiag/pkg/errors"
)

// Validate checks that d is drawable: a safe name, a known kind, a
// positive coordinate space, unique positive-size boxes, and relationships
// and messages that only reference declared boxes and participants.
// All problems are reported together.
func (d *Diagram) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDiagram, format, args...))
	}

	if err := errors.ValidateDiagramName(d.Name); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(Kinds, d.Kind) {
		fail("unknown diagram kind %q", d.Kind)
	}
	if d.Width <= 0 || d.Height <= 0 {
		fail("coordinate space must be positive, got %gx%g", d.Width, d.Height)
	}
	if d.FigureWidth < 0 {
		fail("figure width cannot be negative")
	}

	seen := make(map[string]bool, len(d.Boxes))
	for _, b := range d.Boxes {
		switch {
		case b.Label == "":
			fail("box at (%g, %g) has no label", b.X, b.Y)
		case seen[b.Label]:
			fail("duplicate box label %q", b.Label)
		}
		seen[b.Label] = true
		if b.W <= 0 || b.H <= 0 {
			fail("box %q must have positive size, got %gx%g", b.Label, b.W, b.H)
		}
		if !slices.Contains(BoxKinds, b.Kind) {
			fail("box %q has unknown kind %q", b.Label, b.Kind)
		}
	}

	for _, r := range d.Relationships {
		if !seen[r.From] {
			fail("relationship references unknown box %q", r.From)
		}
		if !seen[r.To] {
			fail("relationship references unknown box %q", r.To)
		}
		if r.From == r.To && r.From != "" {
			fail("relationship from %q to itself", r.From)
		}
		if !slices.Contains(RelKinds, r.Kind) {
			fail("relationship %s -> %s has unknown kind %q", r.From, r.To, r.Kind)
		}
	}

	if d.Sequence != nil {
		errs = append(errs, d.Sequence.validate()...)
	} else if d.Kind == KindSequence {
		fail("sequence diagram %q has no sequence section", d.Name)
	}

	if d.Legend != nil && (d.Legend.W <= 0 || d.Legend.H <= 0) {
		fail("legend must have positive size")
	}

	for cat, c := range d.Palette {
		if err := errors.ValidateColor(c); err != nil {
			fail("palette entry %q: %s", cat, errors.UserMessage(err))
		}
	}

	return errors.Join(errors.ErrCodeInvalidDiagram, errs)
}

func (s *Sequence) validate() []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDiagram, format, args...))
	}

	if s.Bottom >= s.HeadY {
		fail("lifeline bottom %g must be below head %g", s.Bottom, s.HeadY)
	}

	names := make(map[string]bool, len(s.Participants))
	for _, p := range s.Participants {
		if p.Name == "" {
			fail("participant at x=%g has no name", p.X)
		}
		if names[p.Name] {
			fail("duplicate participant %q", p.Name)
		}
		names[p.Name] = true
	}

	for i, m := range s.Messages {
		if !names[m.From] {
			fail("message %d references unknown participant %q", i+1, m.From)
		}
		if !names[m.To] {
			fail("message %d references unknown participant %q", i+1, m.To)
		}
		if !slices.Contains(MessageKinds, m.Kind) {
			fail("message %d has unknown kind %q", i+1, m.Kind)
		}
		if m.Kind == MsgSelf && m.From != m.To {
			fail("self message %d must start and end on the same participant", i+1)
		}
	}

	for _, a := range s.Activations {
		if !names[a.Participant] {
			fail("activation references unknown participant %q", a.Participant)
		}
		if a.Height <= 0 {
			fail("activation on %q must have positive height", a.Participant)
		}
	}

	return errs
}
