package diary

import (
	"fmt"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/recur"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/chris-regnier/diary/internal/window"
)

// DeleteResult describes a committed deletion.
type DeleteResult struct {
	Deleted       []event.Occurrence
	Continuations []event.Occurrence
	BackupPath    string
}

// Delete removes the stored events inside the window for numDays.
//
// Only stored records are candidates: occurrences of repeating events are
// not expanded, so a repeating event stops only when its stored record is
// deleted. For each repeating candidate the user may keep it repeating, in
// which case a continuation record is stored at its first occurrence after
// the window. The backup written by the commit is kept as an undo point.
func (e *Engine) Delete(numDays int) (DeleteResult, error) {
	w, err := window.New(e.now, numDays)
	if err != nil {
		return DeleteResult{}, err
	}
	events, err := e.load()
	if err != nil {
		return DeleteResult{}, err
	}
	occs, err := event.Resolve(events)
	if err != nil {
		return DeleteResult{}, err
	}

	toDelete, kept := Partition(occs, w)
	if len(toDelete) == 0 {
		fmt.Fprintln(e.out, "Nothing to delete.")
		return DeleteResult{}, nil
	}

	var continuations []event.Occurrence
	for _, o := range toDelete {
		if !o.Event.Repeats() {
			continue
		}
		keep, err := e.confirm(fmt.Sprintf("%q %s. Keep it repeating after this period?",
			ui.Capitalize(o.Event.Title), ui.RepeatPhrase(o.Event.Repeat)))
		if err != nil {
			return DeleteResult{}, err
		}
		if !keep {
			continue
		}
		next, ok, err := recur.NextAfter(o, w.Upper)
		if err != nil {
			return DeleteResult{}, err
		}
		if !ok {
			e.log.Warn("no representable continuation, repetition ends", "title", o.Event.Title)
			continue
		}
		continuations = append(continuations, event.Occurrence{Event: o.Event.At(next), At: next})
	}

	noun := "events"
	if len(toDelete) == 1 {
		noun = "event"
	}
	fmt.Fprintf(e.out, "\nThe following %d %s will be deleted:\n\n", len(toDelete), noun)
	for _, o := range toDelete {
		fmt.Fprint(e.out, e.format.Event(o))
	}
	for _, o := range continuations {
		fmt.Fprintf(e.out, "\n%q will continue from:\n%s", ui.Capitalize(o.Event.Title), e.format.Event(o))
	}
	if overlapping(kept, w) {
		fmt.Fprintln(e.out, "\nNote: repeating events stored outside this period still occur in it. "+
			"Delete their original entries to stop them.")
	}
	fmt.Fprintln(e.out)

	ok, err := e.confirm("Delete these events?")
	if err != nil {
		return DeleteResult{}, err
	}
	if !ok {
		return DeleteResult{}, ErrAborted
	}

	remaining := event.Events(append(kept, continuations...))
	backup, err := e.store.Commit(remaining)
	if err != nil {
		return DeleteResult{}, err
	}
	e.log.Info("deleted events", "deleted", len(toDelete), "continued", len(continuations), "backup", backup)

	fmt.Fprintf(e.out, "Deleted %d %s.\n", len(toDelete), noun)
	if backup != "" {
		fmt.Fprintf(e.out, "The previous diary was backed up to %s\n", backup)
	}
	return DeleteResult{Deleted: toDelete, Continuations: continuations, BackupPath: backup}, nil
}

// overlapping reports whether any kept repeating record has an occurrence
// inside w.
func overlapping(kept []event.Occurrence, w window.Window) bool {
	for _, o := range kept {
		times, err := recur.Expand(o, w)
		if err == nil && len(times) > 0 {
			return true
		}
	}
	return false
}
