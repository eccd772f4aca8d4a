// Package snapshot exports the diary as a human-readable file that is never
// written over an existing one.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/ui"
)

// Format selects the export encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatICS  Format = "ics"
	FormatYAML Format = "yaml"
)

// maxAttempts bounds the search for a free file name.
const maxAttempts = 10000

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatICS, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown snapshot format %q (use text, ics or yaml)", s)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	switch f {
	case FormatICS:
		return ".ics"
	case FormatYAML:
		return ".yaml"
	}
	return ""
}

// Render encodes the occurrences, which must be sorted by time.
func Render(f Format, occs []event.Occurrence, now time.Time) ([]byte, error) {
	switch f {
	case FormatICS:
		s, err := ICS(occs, now)
		return []byte(s), err
	case FormatYAML:
		return YAML(occs, now)
	}
	return []byte(Text(occs, now)), nil
}

// Text renders the diary grouped by year:
//
//	Diary saved on 2026-10-15 at 09:30:00
//
//	2026
//	----
//	<event>...
func Text(occs []event.Occurrence, now time.Time) string {
	format := ui.PlainFormatter(now)

	var b strings.Builder
	fmt.Fprintf(&b, "Diary saved on %s at %s\n\n", now.Format("2006-01-02"), now.Format("15:04:05"))

	year := 0
	for i, o := range occs {
		if i == 0 || o.At.Year() != year {
			if i > 0 {
				b.WriteString("\n")
			}
			year = o.At.Year()
			fmt.Fprintf(&b, "%d\n----\n", year)
		}
		b.WriteString(format.Event(o))
	}
	if len(occs) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// Write stores data at base+ext, or at base+N+ext for the smallest N >= 1
// that is free. It never replaces an existing file and returns the path used.
func Write(base, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(base), 0755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}
	for n := 0; n < maxAttempts; n++ {
		path := base + ext
		if n > 0 {
			path = base + strconv.Itoa(n) + ext
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", path, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("closing %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s after %d attempts", base+ext, maxAttempts)
}
