package mcptools

import (
	"context"
	"errors"
	"time"

	"github.com/chris-regnier/diary/internal/diary"
	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/store"
	"github.com/chris-regnier/diary/internal/window"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultDays = 7

// Loader reads the stored events.
type Loader interface {
	Load() ([]event.Event, error)
}

// ListEventsHandler returns the handler function for the list_events MCP tool.
// now is called once per request.
func ListEventsHandler(events Loader, now func() time.Time) func(ctx context.Context, req *mcp.CallToolRequest, input ListEventsInput) (*mcp.CallToolResult, ListEventsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListEventsInput) (*mcp.CallToolResult, ListEventsOutput, error) {
		days := defaultDays
		if input.Days != nil {
			days = *input.Days
		}

		w, err := window.New(now(), days)
		if err != nil {
			return nil, ListEventsOutput{}, err
		}

		stored, err := events.Load()
		if err != nil && !errors.Is(err, store.ErrUnreadable) {
			return nil, ListEventsOutput{}, err
		}

		occs, err := diary.Select(stored, w)
		if err != nil {
			return nil, ListEventsOutput{}, err
		}

		results := make([]EventResult, 0, len(occs))
		for _, o := range occs {
			results = append(results, EventResult{
				Title:      o.Event.Title,
				Time:       o.At.Format(event.Layout),
				Location:   o.Event.Location,
				Repeat:     o.Event.Repeat,
				Occurrence: o.Synthesized,
			})
		}

		return nil, ListEventsOutput{
			Summary: diary.Summary(len(results), days),
			From:    w.Lower.Format(event.Layout),
			To:      w.Upper.Format(event.Layout),
			Events:  results,
		}, nil
	}
}
