package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/diary/internal/diary"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"7"}, []string{"7"}},
		{[]string{"-3"}, []string{"--", "-3"}},
		{[]string{"delete", "-1"}, []string{"delete", "--", "-1"}},
		{[]string{"--json", "-2"}, []string{"--json", "--", "-2"}},
		{[]string{"--", "-2"}, []string{"--", "-2"}},
		{[]string{"-3", "--json"}, []string{"--json", "--", "-3"}},
		{[]string{"delete", "-1", "--plain"}, []string{"delete", "--plain", "--", "-1"}},
		{[]string{"7", "--", "-2"}, []string{"7", "--", "-2"}},
		{[]string{"-h"}, []string{"-h"}},
		{[]string{"save", "--format", "ics"}, []string{"save", "--format", "ics"}},
	}
	for _, tt := range tests {
		got := normalizeArgs(tt.in)
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("normalizeArgs(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDays(t *testing.T) {
	for in, want := range map[string]int{"0": 0, "7": 7, "-1": -1, " 30 ": 30} {
		got, err := parseDays(in)
		if err != nil {
			t.Errorf("parseDays(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseDays(%q) = %d, want %d", in, got, want)
		}
	}
	for _, in := range []string{"", "week", "1.5", "7d"} {
		if _, err := parseDays(in); err == nil {
			t.Errorf("parseDays(%q) succeeded", in)
		}
	}
}

func TestRootMissingFileCreatesEmptyDiary(t *testing.T) {
	path := setupTestEnv(t)

	out, err := run(t, path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "You have 0 events in the coming week.") {
		t.Errorf("unexpected output: %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("events document not created: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("document = %q", data)
	}
}

func TestRootNegativeDays(t *testing.T) {
	path := setupTestEnv(t)
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02") + "T12:00:00"
	writeEvents(t, path, `[{"title":"Lunch","ISO":"`+yesterday+`"}]`)

	out, err := run(t, path, "", "-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "You had 1 event between the start of yesterday and now.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRootJSON(t *testing.T) {
	path := setupTestEnv(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02") + "T09:00:00"
	writeEvents(t, path, `[{"title":"Standup","ISO":"`+tomorrow+`","repeat":1}]`)

	out, err := run(t, path, "", "--json", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0]["title"] != "Standup" || got[0]["time"] != tomorrow {
		t.Errorf("unexpected JSON: %v", got)
	}
}

func TestRootNegativeDaysBeforeFlag(t *testing.T) {
	path := setupTestEnv(t)
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02") + "T12:00:00"
	writeEvents(t, path, `[{"title":"Lunch","ISO":"`+yesterday+`"}]`)

	out, err := run(t, path, "", "-1", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0]["title"] != "Lunch" {
		t.Errorf("unexpected JSON: %v", got)
	}
}

func TestRootInvalidDays(t *testing.T) {
	path := setupTestEnv(t)
	if _, err := run(t, path, "", "soon"); err == nil {
		t.Fatal("expected an error for a non-numeric day count")
	}
}

func TestRootInvalidRecordIsFatal(t *testing.T) {
	path := setupTestEnv(t)
	writeEvents(t, path, `[{"ISO":"2024-03-01T09:00:00"}]`)

	if _, err := run(t, path, ""); err == nil {
		t.Fatal("expected an error for a record without a title")
	}
}

func TestAddCommand(t *testing.T) {
	path := setupTestEnv(t)
	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	out, err := run(t, path, "Dentist\n"+date+"\n14:30\nHigh Street\n\ny\n", "add")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Event added.") {
		t.Errorf("unexpected output: %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"ISO": "`+date+`T14:30:00"`) {
		t.Errorf("event not stored:\n%s", data)
	}
}

func TestAddCommandQuit(t *testing.T) {
	path := setupTestEnv(t)

	_, err := run(t, path, "q\n", "add")
	if !errors.Is(err, diary.ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
}

func TestDeleteCommand(t *testing.T) {
	path := setupTestEnv(t)
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	earlier := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	writeEvents(t, path, `[
  {"title":"Yesterday","ISO":"`+yesterday+`T12:00:00"},
  {"title":"Earlier","ISO":"`+earlier+`T12:00:00"}
]`)

	out, err := run(t, path, "y\n", "delete", "-1")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Deleted 1 event.") {
		t.Errorf("unexpected output: %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Yesterday") || !strings.Contains(string(data), "Earlier") {
		t.Errorf("unexpected document:\n%s", data)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("backup missing: %v", err)
	}
}

func TestDeleteCommandRequiresDays(t *testing.T) {
	path := setupTestEnv(t)
	if _, err := run(t, path, "", "delete"); err == nil {
		t.Fatal("expected an error without a day count")
	}
}

func TestSaveCommand(t *testing.T) {
	path := setupTestEnv(t)
	writeEvents(t, path, `[{"title":"Gym","ISO":"2024-03-05T18:00:00","repeat":7}]`)

	out, err := run(t, path, "", "save", "--format", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Diary successfully written to ") || !strings.Contains(out, "saved_diary.yaml.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSaveCommandRejectsUnknownFormat(t *testing.T) {
	path := setupTestEnv(t)
	if _, err := run(t, path, "", "save", "--format", "pdf"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestVersionCommand(t *testing.T) {
	path := setupTestEnv(t)
	out, err := run(t, path, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "diary "+Version {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestHelpPrintsUsage(t *testing.T) {
	path := setupTestEnv(t)
	out, err := run(t, path, "", "--help")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "diary delete N") {
		t.Errorf("usage not printed: %q", out)
	}
}
