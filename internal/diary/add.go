package diary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chris-regnier/diary/internal/event"
)

// Add interactively builds a new event, asks for confirmation and commits
// it. The backup is removed after a successful commit unless the previous
// document could not be read, in which case it is the only copy left.
func (e *Engine) Add() (event.Event, error) {
	events, err := e.load()
	if err != nil {
		return event.Event{}, err
	}
	wasUnreadable := e.store.Unreadable()

	if e.quitWord != "" {
		fmt.Fprintf(e.out, "Enter %q at any prompt to quit.\n", e.quitWord)
	}

	title, err := e.askNonEmpty("Event title:")
	if err != nil {
		return event.Event{}, err
	}
	at, err := e.askDateTime()
	if err != nil {
		return event.Event{}, err
	}
	location, err := e.ask("Location (optional):")
	if err != nil {
		return event.Event{}, err
	}
	repeat, err := e.askRepeat()
	if err != nil {
		return event.Event{}, err
	}

	candidate := event.New(title, at, location, repeat)
	fmt.Fprintf(e.out, "\nPlease check your event's details:\n%s\n",
		e.format.Event(event.Occurrence{Event: candidate, At: at}))
	if at.Before(e.now) {
		fmt.Fprintln(e.out, "Note: the event is in the past.")
	}

	ok, err := e.confirm("Would you like to add this event to the diary?")
	if err != nil {
		return event.Event{}, err
	}
	if !ok {
		return event.Event{}, ErrAborted
	}

	backup, err := e.store.Commit(append(events, candidate))
	if err != nil {
		return event.Event{}, err
	}
	if wasUnreadable && backup != "" {
		fmt.Fprintf(e.out, "The unreadable previous document was kept at %s\n", backup)
	} else if err := e.store.DiscardBackup(); err != nil {
		e.log.Warn("could not remove backup", "err", err)
	}
	e.log.Info("added event", "title", candidate.Title, "at", candidate.ISO)
	fmt.Fprintln(e.out, "Event added.")
	return candidate, nil
}

// askDateTime prompts for a date and a time until both parse.
func (e *Engine) askDateTime() (time.Time, error) {
	date, err := e.askParsed("Date ("+layoutHint(e.dateFormats[0])+"):", e.dateFormats, "Incorrect date format.")
	if err != nil {
		return time.Time{}, err
	}
	clock, err := e.askParsed("Time ("+layoutHint(e.timeFormats[0])+"):", e.timeFormats, "Incorrect time format.")
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}

func (e *Engine) askParsed(prompt string, layouts []string, complaint string) (time.Time, error) {
	for {
		answer, err := e.askNonEmpty(prompt)
		if err != nil {
			return time.Time{}, err
		}
		if t, ok := parseAny(answer, layouts); ok {
			return t, nil
		}
		e.log.Debug("rejected input", "input", answer, "layouts", layouts)
		fmt.Fprintln(e.out, complaint+" Please try again.")
	}
}

func (e *Engine) askRepeat() (int, error) {
	for {
		answer, err := e.ask("Repeat every how many days (optional):")
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil && event.ValidateRepeat(n) == nil {
			return n, nil
		}
		fmt.Fprintln(e.out, "Please enter a positive whole number of days, or leave it blank.")
	}
}

func parseAny(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var hintReplacer = strings.NewReplacer(
	"2006", "yyyy",
	"01", "mm",
	"02", "dd",
	"15", "HH",
	"04", "MM",
)

// layoutHint turns a Go time layout into a reader-friendly hint.
func layoutHint(layout string) string {
	return hintReplacer.Replace(layout)
}
