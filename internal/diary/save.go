package diary

import (
	"fmt"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/snapshot"
)

// Save exports every stored event, sorted by time, to a new file next to
// base. The path actually written is returned.
func (e *Engine) Save(format snapshot.Format, base string) (string, error) {
	events, err := e.load()
	if err != nil {
		return "", err
	}
	occs, err := event.Resolve(events)
	if err != nil {
		return "", err
	}
	event.Sort(occs)

	data, err := snapshot.Render(format, occs, e.now)
	if err != nil {
		return "", err
	}
	path, err := snapshot.Write(base, format.Ext(), data)
	if err != nil {
		return "", err
	}
	e.log.Info("saved snapshot", "path", path, "format", format, "events", len(occs))
	fmt.Fprintf(e.out, "Diary successfully written to %s.\n", path)
	return path, nil
}
