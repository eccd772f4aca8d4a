package ui

import (
	"encoding/json"
	"io"

	"github.com/chris-regnier/diary/internal/event"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EventSummary is a JSON representation of one listed occurrence.
type EventSummary struct {
	Title      string `json:"title"`
	Time       string `json:"time"`
	Location   string `json:"location,omitempty"`
	Repeat     int    `json:"repeat,omitempty"`
	Occurrence bool   `json:"occurrence"`
}

// ToSummaries converts occurrences to summary format for JSON output.
func ToSummaries(occs []event.Occurrence) []EventSummary {
	summaries := make([]EventSummary, len(occs))
	for i, o := range occs {
		summaries[i] = EventSummary{
			Title:      o.Event.Title,
			Time:       o.At.Format(event.Layout),
			Location:   o.Event.Location,
			Repeat:     o.Event.Repeat,
			Occurrence: o.Synthesized,
		}
	}
	return summaries
}
