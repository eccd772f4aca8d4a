package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/diary/internal/event"
)

const (
	dateLayout = "Mon, Jan 02"
	timeLayout = "15:04"
)

// Formatter renders events as display blocks.
type Formatter struct {
	// Year is the current year; dates in other years get a year suffix.
	Year int

	styled bool
	date   lipgloss.Style
	muted  lipgloss.Style
}

// NewFormatter returns a Formatter for the given theme. When styled is
// false the output contains no escape sequences.
func NewFormatter(theme Theme, styled bool, now time.Time) Formatter {
	return Formatter{
		Year:   now.Year(),
		styled: styled,
		date:   lipgloss.NewStyle().Underline(true),
		muted:  theme.MutedStyle(),
	}
}

// PlainFormatter returns an unstyled Formatter, as used for exports.
func PlainFormatter(now time.Time) Formatter {
	return Formatter{Year: now.Year()}
}

// Event renders one occurrence:
//
//	Mon, Jan 02[ 2027][ (repeats every N days)]
//	15:04<TAB>Title[, Location]
func (f Formatter) Event(o event.Occurrence) string {
	date := o.At.Format(dateLayout)
	if o.At.Year() != f.Year {
		date += fmt.Sprintf(" %d", o.At.Year())
	}

	var annotation string
	if o.Event.Repeats() {
		annotation = " " + RepeatPhrase(o.Event.Repeat)
	}

	if f.styled {
		date = f.date.Render(date)
		if annotation != "" {
			annotation = " " + f.muted.Render(strings.TrimSpace(annotation))
		}
	}

	var b strings.Builder
	b.WriteString(date)
	b.WriteString(annotation)
	b.WriteString("\n")
	b.WriteString(o.At.Format(timeLayout))
	b.WriteString("\t")
	b.WriteString(Capitalize(o.Event.Title))
	if o.Event.Location != "" {
		b.WriteString(", ")
		b.WriteString(Capitalize(o.Event.Location))
	}
	b.WriteString("\n")
	return b.String()
}

// RepeatPhrase describes a repeat interval.
func RepeatPhrase(days int) string {
	if days == 1 {
		return "(repeats every day)"
	}
	return fmt.Sprintf("(repeats every %d days)", days)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
