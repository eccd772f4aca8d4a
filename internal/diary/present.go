package diary

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/recur"
	"github.com/chris-regnier/diary/internal/window"
)

// Listing is the result of selecting events for a window.
type Listing struct {
	Window window.Window
	Events []event.Occurrence
}

// Partition splits occurrences into those strictly inside w and the rest,
// keeping their relative order.
func Partition(occs []event.Occurrence, w window.Window) (in, out []event.Occurrence) {
	for _, o := range occs {
		if w.Contains(o.At) {
			in = append(in, o)
		} else {
			out = append(out, o)
		}
	}
	return in, out
}

// Select returns the stored events and synthesized occurrences of
// repeating events that fall inside w, sorted by time.
func Select(events []event.Event, w window.Window) ([]event.Occurrence, error) {
	occs, err := event.Resolve(events)
	if err != nil {
		return nil, err
	}
	synth, err := recur.Occurrences(occs, w)
	if err != nil {
		return nil, err
	}
	in, _ := Partition(append(occs, synth...), w)
	event.Sort(in)
	return in, nil
}

// Upcoming loads the diary and selects what falls in the window for numDays.
func (e *Engine) Upcoming(numDays int) (Listing, error) {
	w, err := window.New(e.now, numDays)
	if err != nil {
		return Listing{}, err
	}
	events, err := e.load()
	if err != nil {
		return Listing{}, err
	}
	occs, err := Select(events, w)
	if err != nil {
		return Listing{}, err
	}
	e.log.Debug("selected events", "days", numDays, "stored", len(events), "shown", len(occs),
		"lower", w.Lower, "upper", w.Upper)
	return Listing{Window: w, Events: occs}, nil
}

// Present prints the events in the window for numDays.
func (e *Engine) Present(numDays int) error {
	listing, err := e.Upcoming(numDays)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Summary(len(listing.Events), numDays))
	b.WriteString("\n\n")
	for _, o := range listing.Events {
		b.WriteString(e.format.Event(o))
	}
	_, err = fmt.Fprintln(e.out, b.String())
	return err
}

// Summary returns the headline for a listing of count events over numDays.
func Summary(count, numDays int) string {
	noun := "events"
	if count == 1 {
		noun = "event"
	}
	if numDays < 0 {
		head := fmt.Sprintf("You had %d %s", count, noun)
		if numDays == -1 {
			return head + " between the start of yesterday and now."
		}
		return head + fmt.Sprintf(" in the previous %d days.", -numDays)
	}

	head := fmt.Sprintf("You have %d %s", count, noun)
	switch numDays {
	case 0:
		return head + " remaining today."
	case 1:
		return head + " between now and the end of tomorrow."
	case 7:
		return head + " in the coming week."
	case 30:
		return head + " in the coming month."
	case 365:
		return head + " in the coming year."
	}
	return head + fmt.Sprintf(" in the next %d days.", numDays)
}
