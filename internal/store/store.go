// Package store persists the diary's event list as a single JSON document.
//
// Every commit first copies the current document to a ".bak" sibling and
// then replaces the document through a temp file and a rename, so a crash
// mid-write leaves either the old or the new content in place.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chris-regnier/diary/internal/event"
)

// Sentinel errors for store operations.
var (
	ErrIsDirectory = errors.New("events path is a directory")
	ErrValidation  = errors.New("validation error")
	ErrUnreadable  = errors.New("events document is not a valid JSON array")
	ErrStorage     = errors.New("storage error")
)

// BackupSuffix is appended to the document path to name the backup copy.
const BackupSuffix = ".bak"

const (
	tmpAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	tmpIDLength = 10
)

// Store reads and commits the event list held in one JSON document.
type Store struct {
	path       string
	log        *slog.Logger
	unreadable bool

	// openTemp creates the temp file for an atomic write.
	openTemp func(name string, perm fs.FileMode) (*os.File, error)
}

func openExclusive(name string, perm fs.FileMode) (*os.File, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// New prepares a store for the document at path, creating its parent
// directory if needed. The document itself is created on first Load.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", ErrStorage, err)
	}
	s := &Store{path: path, log: logger.With("component", "store"), openTemp: openExclusive}
	if err := s.checkNotDir(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the document path.
func (s *Store) Path() string { return s.path }

// BackupPath returns the path of the backup copy written by Commit.
func (s *Store) BackupPath() string { return s.path + BackupSuffix }

// Unreadable reports whether the last Load fell back to an empty list
// because the document could not be parsed.
func (s *Store) Unreadable() bool { return s.unreadable }

func (s *Store) checkNotDir() error {
	info, err := os.Stat(s.path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, s.path)
	}
	return nil
}

// Load reads every stored event.
//
// A missing document is created holding an empty array. A document that is
// not a JSON array yields an empty list and an error wrapping ErrUnreadable;
// the file is left untouched so it can be recovered by hand. A record that
// lacks a required field fails the whole load with ErrValidation.
func (s *Store) Load() ([]event.Event, error) {
	s.unreadable = false
	if err := s.checkNotDir(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("events document not found, creating it", "path", s.path)
		if err := s.atomicWrite(s.path, []byte("[]\n")); err != nil {
			return nil, err
		}
		return []event.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, s.path, err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		s.unreadable = true
		s.log.Warn("events document is not a valid JSON array, no events loaded", "path", s.path, "err", err)
		return []event.Event{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, s.path, err)
	}

	events := make([]event.Event, 0, len(raws))
	for i, raw := range raws {
		if string(bytes.TrimSpace(raw)) == "null" {
			return nil, fmt.Errorf("%w: event %d in %s: %v", ErrValidation, i+1, s.path, event.ErrMissingField)
		}
		var e event.Event
		if err := json.Unmarshal(raw, &e); err != nil {
			s.log.Error("formatting error in stored event", "index", i, "path", s.path, "err", err)
			return nil, fmt.Errorf("%w: event %d in %s: %v", ErrValidation, i+1, s.path, err)
		}
		events = append(events, e)
	}
	s.log.Debug("loaded events", "path", s.path, "count", len(events))
	return events, nil
}

// Commit replaces the stored list with events. The previous document is
// copied to BackupPath first; the returned path is that backup. Commit
// never removes the backup; callers decide with DiscardBackup.
func (s *Store) Commit(events []event.Event) (string, error) {
	data, err := Encode(events)
	if err != nil {
		return "", fmt.Errorf("%w: encoding events: %v", ErrStorage, err)
	}
	if err := s.checkNotDir(); err != nil {
		return "", err
	}

	backup, err := s.backup()
	if err != nil {
		return "", err
	}
	if err := s.atomicWrite(s.path, data); err != nil {
		return backup, err
	}
	s.unreadable = false
	s.log.Info("committed events", "path", s.path, "count", len(events), "backup", backup)
	return backup, nil
}

// DiscardBackup removes the backup copy if present.
func (s *Store) DiscardBackup() error {
	if err := os.Remove(s.BackupPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing backup: %v", ErrStorage, err)
	}
	s.log.Debug("removed backup", "path", s.BackupPath())
	return nil
}

// backup copies the current document byte for byte. It returns "" when
// there is no document yet.
func (s *Store) backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading document for backup: %v", ErrStorage, err)
	}
	path := s.BackupPath()
	if err := s.atomicWrite(path, data); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	s.log.Debug("created backup", "path", path)
	return path, nil
}

// atomicWrite writes data to a temp file in the target's directory, syncs
// it, then renames it over path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	id, err := gonanoid.Generate(tmpAlphabet, tmpIDLength)
	if err != nil {
		return fmt.Errorf("%w: naming temp file: %v", ErrStorage, err)
	}
	tmpName := filepath.Join(dir, "."+filepath.Base(path)+"."+id+".tmp")

	tmp, err := s.openTemp(tmpName, perm)
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", ErrStorage, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing temp file: %v", ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", ErrStorage, err)
	}

	return nil
}

// Encode serializes events as an indented JSON array.
func Encode(events []event.Event) ([]byte, error) {
	if events == nil {
		events = []event.Event{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(events); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
