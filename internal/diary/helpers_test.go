package diary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/store"
	"github.com/chris-regnier/diary/internal/ui"
)

// now is a Friday morning.
var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)

type testEnv struct {
	store *store.Store
	out   *strings.Builder
}

func setupTestEnv(t *testing.T, events ...event.Event) *testEnv {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "events.json"), nil)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if events != nil {
		if _, err := s.Commit(events); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}
	return &testEnv{store: s, out: &strings.Builder{}}
}

// engine returns an engine whose prompts are answered by the given lines.
func (env *testEnv) engine(answers ...string) *Engine {
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	if len(answers) == 0 {
		in = strings.NewReader("")
	}
	p := ui.NewLinePrompter(in, env.out)
	p.QuitWord = "q"
	return New(Config{
		Store:    env.store,
		Prompter: p,
		Out:      env.out,
		Now:      now,
		QuitWord: "q",
	})
}

func (env *testEnv) stored(t *testing.T) []event.Event {
	t.Helper()
	events, err := env.store.Load()
	if err != nil {
		t.Fatalf("loading store: %v", err)
	}
	return events
}

func (env *testEnv) writeDoc(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(env.store.Path(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func at(day, hour, min int) time.Time {
	return time.Date(2024, 3, day, hour, min, 0, 0, time.Local)
}

func titles(events []event.Event) string {
	var out []string
	for _, e := range events {
		out = append(out, e.Title)
	}
	return strings.Join(out, ",")
}
