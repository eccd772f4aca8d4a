package event

import (
	"sort"
	"time"
)

// Occurrence is a record resolved to a concrete local time. Synthesized
// occurrences are generated from a repeating record and are never stored.
type Occurrence struct {
	Event       Event
	At          time.Time
	Synthesized bool
}

// Resolve parses every record's timestamp.
func Resolve(events []Event) ([]Occurrence, error) {
	out := make([]Occurrence, 0, len(events))
	for _, e := range events {
		o, err := e.Resolve()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// Sort orders occurrences by time, earliest first.
func Sort(occs []Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		return occs[i].At.Before(occs[j].At)
	})
}

// Events returns the stored records behind a set of occurrences.
func Events(occs []Occurrence) []Event {
	out := make([]Event, len(occs))
	for i, o := range occs {
		out[i] = o.Event
	}
	return out
}
