// Package catalog holds the Pentagon Gymnastics diagram tables.
//
// Each table is a literal [diagram.Diagram]: box positions, labels and
// relationship pairs for one dissertation figure. The tables are snapshots
// of an evolving application schema and disagree with each other in places
// (the ERD and the class diagram describe User differently, for example);
// none of them is authoritative.
//
// Callers always receive deep copies, so a table can be adjusted (timestamp
// switched off, palette overridden) without affecting later lookups.
package catalog

import (
	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/errors"
)

// OutputDir is the default directory for generated figures.
const OutputDir = "dissertation_diagrams"

// Diagram names in generation order.
const (
	ERD                  = "pentagon_gym_erd"
	ClassDiagram         = "pentagon_gym_class_diagram"
	SystemArchitecture   = "pentagon_gym_system_architecture"
	LayeredArchitecture  = "pentagon_gym_layered_architecture"
	RegistrationSequence = "pentagon_gym_registration_sequence"
	BookingSequence      = "pentagon_gym_booking_sequence"
	SubscriptionSequence = "pentagon_gym_subscription_sequence"
)

var builders = []func() *diagram.Diagram{
	erd,
	classDiagram,
	systemArchitecture,
	layeredArchitecture,
	registrationSequence,
	bookingSequence,
	subscriptionSequence,
}

// All returns fresh copies of every catalog diagram in generation order.
func All() []*diagram.Diagram {
	out := make([]*diagram.Diagram, len(builders))
	for i, build := range builders {
		out[i] = build()
	}
	return out
}

// Names returns the catalog diagram names in generation order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

// Lookup returns a fresh copy of the named diagram.
func Lookup(name string) (*diagram.Diagram, error) {
	for _, build := range builders {
		if d := build(); d.Name == name {
			return d, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnknownDiagram, "unknown diagram %q", name)
}

// Select resolves names to diagrams, preserving the requested order.
// An empty list selects the whole catalog. Unknown names are reported
// together.
func Select(names []string) ([]*diagram.Diagram, error) {
	if len(names) == 0 {
		return All(), nil
	}
	var (
		out  []*diagram.Diagram
		errs []error
	)
	for _, name := range names {
		d, err := Lookup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, d)
	}
	if err := errors.Join(errors.ErrCodeUnknownDiagram, errs); err != nil {
		return nil, err
	}
	return out, nil
}
