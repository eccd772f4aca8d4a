// Package recur expands repeating diary events into concrete occurrences.
//
// A repeating event recurs every Repeat days from its stored timestamp,
// forever. Recurrence is wall-clock day arithmetic in local time, expressed
// as a FREQ=DAILY rule.
package recur

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/window"
)

// rule builds the recurrence for base. Until is set to the last
// representable second because rrule-go otherwise stops about 292 years
// after Dtstart.
func rule(base time.Time, days int) (*rrule.RRule, error) {
	return rrule.NewRRule(rrule.ROption{
		Freq:     rrule.DAILY,
		Interval: days,
		Dtstart:  base,
		Until:    time.Date(9999, 12, 31, 23, 59, 59, 0, base.Location()),
	})
}

// Expand returns the timestamps base + k*repeat (k >= 1) that fall strictly
// inside w. The base timestamp itself is never returned.
func Expand(o event.Occurrence, w window.Window) ([]time.Time, error) {
	if !o.Event.Repeats() || !o.At.Before(w.Upper) {
		return nil, nil
	}
	r, err := rule(o.At, o.Event.Repeat)
	if err != nil {
		return nil, err
	}

	var out []time.Time
	for _, t := range r.Between(w.Lower, w.Upper, false) {
		if !t.After(o.At) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Occurrences synthesizes the in-window occurrences of every repeating
// record in occs. Synthesized copies carry no repeat interval of their own.
func Occurrences(occs []event.Occurrence, w window.Window) ([]event.Occurrence, error) {
	var out []event.Occurrence
	for _, o := range occs {
		times, err := Expand(o, w)
		if err != nil {
			return nil, err
		}
		for _, t := range times {
			out = append(out, event.Occurrence{
				Event:       o.Event.At(t).WithoutRepeat(),
				At:          t,
				Synthesized: true,
			})
		}
	}
	return out, nil
}

// NextAfter returns the first base + k*repeat strictly after bound. ok is
// false when the record does not repeat or no such time is representable.
func NextAfter(o event.Occurrence, bound time.Time) (next time.Time, ok bool, err error) {
	if !o.Event.Repeats() {
		return time.Time{}, false, nil
	}
	r, err := rule(o.At, o.Event.Repeat)
	if err != nil {
		return time.Time{}, false, err
	}
	next = r.After(bound, false)
	if next.IsZero() {
		return time.Time{}, false, nil
	}
	return next, true, nil
}
