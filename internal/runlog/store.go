// Package runlog records tool invocations in a small SQLite database so
// `storytool history` can show what ran, when, and which files it touched.
package runlog

import (
	"path/filepath"
	"time"

	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/paths"
)

// Store abstracts run-history storage.
type Store interface {
	// Write — best-effort from the caller's perspective: commands report
	// failures to stderr but never fail the run over them.
	Log(tool, detail string, ok bool, files []string) error

	// Read
	Entries(n int) ([]Entry, error)                 // last n in order, n <= 0 = all
	EntriesSince(cutoff time.Time) ([]Entry, error) // entries at or after cutoff
	EntriesAfter(id int64) ([]Entry, error)         // entries with a larger run ID

	// Maintenance
	Clean(days int) (int, error) // remove old entries, return removed count
	Clear() error                // delete all data

	Path() string
	Close() error
}

// Entry is one recorded tool invocation.
type Entry struct {
	ID     int64 // monotonically increasing run ID
	Time   time.Time
	Tool   string // "patch" | "icons"
	Detail string
	OK     bool
	Files  []string // files written or modified, in order
}

// DayCutoff returns midnight local time (days-1) days back, so that
// days=1 means "today".
func DayCutoff(days int) time.Time {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.AddDate(0, 0, -(days - 1))
}

// DBPath returns the history database location in the user data dir.
func DBPath() string {
	return filepath.Join(paths.DataDir(), paths.HistoryDBName)
}
