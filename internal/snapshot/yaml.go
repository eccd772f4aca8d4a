package snapshot

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chris-regnier/diary/internal/event"
)

type yamlEvent struct {
	Title    string `yaml:"title"`
	Time     string `yaml:"time"`
	Location string `yaml:"location,omitempty"`
	Repeat   int    `yaml:"repeat,omitempty"`
}

type yamlSnapshot struct {
	SavedAt string      `yaml:"saved_at"`
	Events  []yamlEvent `yaml:"events"`
}

// YAML renders the events as a YAML document.
func YAML(occs []event.Occurrence, now time.Time) ([]byte, error) {
	doc := yamlSnapshot{
		SavedAt: now.Format(event.Layout),
		Events:  make([]yamlEvent, 0, len(occs)),
	}
	for _, o := range occs {
		doc.Events = append(doc.Events, yamlEvent{
			Title:    o.Event.Title,
			Time:     o.At.Format(event.Layout),
			Location: o.Event.Location,
			Repeat:   o.Event.Repeat,
		})
	}
	return yaml.Marshal(doc)
}
