// Package diary implements the present, add, delete and save operations on
// top of the event store.
package diary

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/store"
	"github.com/chris-regnier/diary/internal/ui"
)

// ErrAborted is returned when the user declines a confirmation or quits a
// prompt. Nothing has been written when it is returned.
var ErrAborted = errors.New("aborted by user")

// EventStore is the persistence the engine needs.
type EventStore interface {
	Load() ([]event.Event, error)
	Commit(events []event.Event) (backupPath string, err error)
	DiscardBackup() error
	Unreadable() bool
}

// Prompter asks the user questions.
type Prompter interface {
	Input(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}

// Config wires an Engine. Store and Out are required.
type Config struct {
	Store     EventStore
	Prompter  Prompter
	Out       io.Writer
	Formatter *ui.Formatter
	Logger    *slog.Logger

	// Now is the frozen current time for the whole invocation. Zero means
	// time.Now() at construction.
	Now time.Time

	DateFormats []string
	TimeFormats []string
	QuitWord    string
}

// Engine runs diary operations. It is meant for a single invocation.
type Engine struct {
	store    EventStore
	prompter Prompter
	out      io.Writer
	format   ui.Formatter
	log      *slog.Logger
	now      time.Time

	dateFormats []string
	timeFormats []string
	quitWord    string
}

// New creates an Engine from cfg.
func New(cfg Config) *Engine {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	format := ui.PlainFormatter(now)
	if cfg.Formatter != nil {
		format = *cfg.Formatter
	}
	dateFormats := cfg.DateFormats
	if len(dateFormats) == 0 {
		dateFormats = []string{"2006-01-02"}
	}
	timeFormats := cfg.TimeFormats
	if len(timeFormats) == 0 {
		timeFormats = []string{"15:04"}
	}
	return &Engine{
		store:       cfg.Store,
		prompter:    cfg.Prompter,
		out:         cfg.Out,
		format:      format,
		log:         logger.With("component", "diary"),
		now:         now,
		dateFormats: dateFormats,
		timeFormats: timeFormats,
		quitWord:    cfg.QuitWord,
	}
}

// Now returns the engine's frozen current time.
func (e *Engine) Now() time.Time {
	return e.now
}

// load reads the stored events. An unreadable document is not fatal: the
// store has already logged it and the diary proceeds empty.
func (e *Engine) load() ([]event.Event, error) {
	events, err := e.store.Load()
	if errors.Is(err, store.ErrUnreadable) {
		return events, nil
	}
	return events, err
}
