package snapshot

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chris-regnier/diary/internal/event"
)

const (
	uidAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	uidLength   = 16
	productID   = "-//chris-regnier//diary//EN"
)

// ICS renders the events as an iCalendar document. Repeating events carry
// a daily RRULE with their interval.
func ICS(occs []event.Occurrence, now time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, o := range occs {
		uid, err := gonanoid.Generate(uidAlphabet, uidLength)
		if err != nil {
			return "", fmt.Errorf("generating event UID: %w", err)
		}
		ev := cal.AddEvent(uid + "@diary")
		ev.SetDtStampTime(now)
		ev.SetStartAt(o.At)
		ev.SetSummary(o.Event.Title)
		if o.Event.Location != "" {
			ev.SetLocation(o.Event.Location)
		}
		if o.Event.Repeats() {
			ev.AddRrule(fmt.Sprintf("FREQ=DAILY;INTERVAL=%d", o.Event.Repeat))
		}
	}

	return cal.Serialize(), nil
}
