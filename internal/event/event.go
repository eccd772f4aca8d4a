// Package event defines the stored diary record and the transient
// occurrence that pairs a record with its resolved timestamp.
package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the timestamp layout written to the ISO key (local time, no offset).
const Layout = "2006-01-02T15:04:05"

// Keys used in the stored JSON object.
const (
	keyTitle    = "title"
	keyISO      = "ISO"
	keyLocation = "location"
	keyRepeat   = "repeat"

	// Records written by the first version of the tool kept date and time apart.
	keyLegacyDate = "date"
	keyLegacyTime = "time"
)

var isoLayouts = []string{
	Layout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Sentinel errors for record validation.
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field")
)

// Event is a single stored diary record. It carries no derived state; the
// parsed timestamp lives on Occurrence.
type Event struct {
	Title    string
	ISO      string
	Location string
	Repeat   int

	// extra holds keys this version does not understand. They are written
	// back unchanged so a commit never drops user data.
	extra map[string]json.RawMessage
}

// New builds a record for the given local wall-clock time.
func New(title string, at time.Time, location string, repeat int) Event {
	return Event{
		Title:    strings.TrimSpace(title),
		ISO:      at.Format(Layout),
		Location: strings.TrimSpace(location),
		Repeat:   repeat,
	}
}

// Repeats reports whether the record recurs.
func (e Event) Repeats() bool {
	return e.Repeat > 0
}

// Time parses the stored timestamp as local wall-clock time.
func (e Event) Time() (time.Time, error) {
	return ParseISO(e.ISO)
}

// At returns a copy of the record moved to t. Legacy date/time keys are
// dropped from the copy so they cannot contradict the new timestamp.
func (e Event) At(t time.Time) Event {
	c := e
	c.ISO = t.Format(Layout)
	if len(e.extra) > 0 {
		c.extra = make(map[string]json.RawMessage, len(e.extra))
		for k, v := range e.extra {
			if k == keyLegacyDate || k == keyLegacyTime {
				continue
			}
			c.extra[k] = v
		}
	}
	return c
}

// WithoutRepeat returns a copy of the record with no recurrence.
func (e Event) WithoutRepeat() Event {
	c := e
	c.Repeat = 0
	return c
}

// Resolve pairs the record with its parsed timestamp.
func (e Event) Resolve() (Occurrence, error) {
	t, err := e.Time()
	if err != nil {
		return Occurrence{}, err
	}
	return Occurrence{Event: e, At: t}, nil
}

// ParseISO parses a stored timestamp in local time. Fractional seconds are
// dropped so that every occurrence lands on a whole second.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: timestamp %q is not an ISO-8601 local time", ErrInvalidField, s)
}

// ValidateTitle checks whether a title is non-empty.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("event title must not be empty")
	}
	return nil
}

// ValidateRepeat checks whether a repeat interval is a positive number of days.
func ValidateRepeat(days int) error {
	if days <= 0 {
		return fmt.Errorf("repeat interval must be a positive number of days, got %d", days)
	}
	return nil
}

// MarshalJSON writes the known keys plus any preserved unknown keys.
func (e Event) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.extra)+4)
	for k, v := range e.extra {
		m[k] = v
	}
	m[keyTitle] = e.Title
	m[keyISO] = e.ISO
	if e.Location != "" {
		m[keyLocation] = e.Location
	}
	if e.Repeat > 0 {
		m[keyRepeat] = e.Repeat
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes one stored record and validates its required
// fields. Validation failures wrap ErrMissingField or ErrInvalidField.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: record is not a JSON object", ErrInvalidField)
	}

	var out Event
	title, ok, err := stringField(raw, keyTitle)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingField, keyTitle)
	}
	if ValidateTitle(title) != nil {
		return fmt.Errorf("%w: %s is empty", ErrInvalidField, keyTitle)
	}
	out.Title = title

	iso, ok, err := stringField(raw, keyISO)
	if err != nil {
		return err
	}
	if !ok {
		iso, ok, err = legacyISO(raw)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s (record %q)", ErrMissingField, keyISO, title)
		}
	}
	if _, err := ParseISO(iso); err != nil {
		return fmt.Errorf("record %q: %w", title, err)
	}
	out.ISO = iso

	if out.Location, _, err = stringField(raw, keyLocation); err != nil {
		return err
	}

	if v, ok := raw[keyRepeat]; ok && string(v) != "null" {
		var n int
		if err := json.Unmarshal(v, &n); err != nil {
			return fmt.Errorf("%w: %s must be a whole number of days (record %q)", ErrInvalidField, keyRepeat, title)
		}
		if err := ValidateRepeat(n); err != nil {
			return fmt.Errorf("%w: %v (record %q)", ErrInvalidField, err, title)
		}
		out.Repeat = n
	}

	for k, v := range raw {
		switch k {
		case keyTitle, keyISO, keyLocation, keyRepeat:
			continue
		}
		if out.extra == nil {
			out.extra = make(map[string]json.RawMessage)
		}
		out.extra[k] = v
	}

	*e = out
	return nil
}

// stringField returns the string value of key. A JSON null counts as absent.
func stringField(raw map[string]json.RawMessage, key string) (string, bool, error) {
	v, ok := raw[key]
	if !ok || string(v) == "null" {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false, fmt.Errorf("%w: %s must be a string", ErrInvalidField, key)
	}
	return s, true, nil
}

// legacyISO rebuilds a timestamp from the old separate date and time keys.
func legacyISO(raw map[string]json.RawMessage) (string, bool, error) {
	date, okDate, err := stringField(raw, keyLegacyDate)
	if err != nil {
		return "", false, err
	}
	clock, okTime, err := stringField(raw, keyLegacyTime)
	if err != nil {
		return "", false, err
	}
	if !okDate || !okTime {
		return "", false, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(date)+" "+strings.TrimSpace(clock), time.Local)
	if err != nil {
		return "", false, fmt.Errorf("%w: date %q and time %q do not form a timestamp", ErrInvalidField, date, clock)
	}
	return t.Format(Layout), true, nil
}
