// Package window computes the time interval a present or delete operation
// works on.
package window

import (
	"errors"
	"fmt"
	"time"
)

// ErrRangeTooLarge is returned when a day count would push a bound outside
// the years 0001 to 9999.
var ErrRangeTooLarge = errors.New("range too large")

const (
	minYear = 1
	maxYear = 9999

	// maxDays is the number of days from 0001-01-01 to 9999-12-31.
	maxDays = 3652058
)

// Window is the open interval (Lower, Upper). Both bounds are excluded.
type Window struct {
	Lower time.Time
	Upper time.Time
	Days  int
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// New computes the window for numDays relative to now.
//
// For numDays >= 0 the window runs from now to the end of the numDays-th
// day after today, so 0 means "the rest of today". For numDays < 0 it runs
// from the start of the day numDays days ago up to now.
func New(now time.Time, numDays int) (Window, error) {
	if numDays > maxDays || numDays < -maxDays {
		return Window{}, fmt.Errorf("%w: %d days", ErrRangeTooLarge, numDays)
	}

	midnight := StartOfDay(now)
	w := Window{Days: numDays}
	if numDays >= 0 {
		w.Lower = now
		w.Upper = midnight.AddDate(0, 0, numDays+1)
	} else {
		w.Lower = midnight.AddDate(0, 0, numDays)
		w.Upper = now
	}

	for _, b := range []time.Time{w.Lower, w.Upper} {
		if y := b.Year(); y < minYear || y > maxYear {
			return Window{}, fmt.Errorf("%w: %d days reaches year %d", ErrRangeTooLarge, numDays, y)
		}
	}
	return w, nil
}

// Contains reports whether t lies strictly inside the window.
func (w Window) Contains(t time.Time) bool {
	return t.After(w.Lower) && t.Before(w.Upper)
}

// Past reports whether the window looks backwards from now.
func (w Window) Past() bool {
	return w.Days < 0
}
