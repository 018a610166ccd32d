package runlog

import (
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogAndEntries(t *testing.T) {
	s := openTemp(t)

	files := []string{"client/public/icon-192x192.png", "client/public/icon-512x512.png"}
	if err := s.Log("icons", "2 file(s)", true, files); err != nil {
		t.Fatalf("Log: %v", err)
	}

	entries, err := s.Entries(0)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Tool != "icons" || e.Detail != "2 file(s)" || !e.OK {
		t.Errorf("entry = %+v", e)
	}
	if len(e.Files) != 2 || e.Files[0] != files[0] || e.Files[1] != files[1] {
		t.Errorf("Files = %v, want %v", e.Files, files)
	}
	if time.Since(e.Time) > time.Minute {
		t.Errorf("timestamp too old: %v", e.Time)
	}
}

func TestEntriesLimit(t *testing.T) {
	s := openTemp(t)

	for _, d := range []string{"one", "two", "three"} {
		if err := s.Log("patch", d, true, nil); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	entries, err := s.Entries(2)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Detail != "two" || entries[1].Detail != "three" {
		t.Errorf("entries = %q, %q; want the two most recent in order",
			entries[0].Detail, entries[1].Detail)
	}
}

func TestEntriesSince(t *testing.T) {
	s := openTemp(t)

	if err := s.Log("icons", "run", true, nil); err != nil {
		t.Fatalf("Log: %v", err)
	}

	past, err := s.EntriesSince(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("EntriesSince: %v", err)
	}
	if len(past) != 1 {
		t.Errorf("entries since the past hour = %d, want 1", len(past))
	}

	future, err := s.EntriesSince(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("EntriesSince: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("entries since the future = %d, want 0", len(future))
	}
}

func TestEntriesAfterSeesSameSecondRuns(t *testing.T) {
	s := openTemp(t)

	// Three runs land within the same RFC3339 second; ID-based reads
	// must still return each of them exactly once.
	for _, d := range []string{"one", "two", "three"} {
		if err := s.Log("icons", d, true, nil); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	all, err := s.Entries(0)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}

	after, err := s.EntriesAfter(all[0].ID)
	if err != nil {
		t.Fatalf("EntriesAfter: %v", err)
	}
	if len(after) != 2 {
		t.Fatalf("len(after) = %d, want 2", len(after))
	}
	if after[0].Detail != "two" || after[1].Detail != "three" {
		t.Errorf("entries after first = %q, %q; want two, three",
			after[0].Detail, after[1].Detail)
	}

	rest, err := s.EntriesAfter(all[2].ID)
	if err != nil {
		t.Fatalf("EntriesAfter: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("entries after last = %d, want 0", len(rest))
	}
}

func TestLogFailureRecorded(t *testing.T) {
	s := openTemp(t)

	if err := s.Log("patch", "permission denied", false, nil); err != nil {
		t.Fatalf("Log: %v", err)
	}
	entries, err := s.Entries(0)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 || entries[0].OK {
		t.Errorf("entries = %+v, want one failed entry", entries)
	}
}

func TestCleanKeepsToday(t *testing.T) {
	s := openTemp(t)

	if err := s.Log("icons", "run", true, nil); err != nil {
		t.Fatalf("Log: %v", err)
	}
	removed, err := s.Clean(1)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if removed != 0 {
		t.Errorf("Clean(1) removed %d entries logged today", removed)
	}
	entries, _ := s.Entries(0)
	if len(entries) != 1 {
		t.Errorf("len(entries) after Clean = %d, want 1", len(entries))
	}
}

func TestClear(t *testing.T) {
	s := openTemp(t)

	if err := s.Log("icons", "run", true, []string{"a.png"}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := s.Entries(0)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) after Clear = %d, want 0", len(entries))
	}
}

func TestDayCutoffTodayIsMidnight(t *testing.T) {
	got := DayCutoff(1)
	now := time.Now()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !got.Equal(want) {
		t.Errorf("DayCutoff(1) = %v, want %v", got, want)
	}
}
