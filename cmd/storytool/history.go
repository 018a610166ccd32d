package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/runlog"
)

const watchInterval = 2 * time.Second

func historyCmd(args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "clear":
			historyClear()
			return
		case "clean":
			historyClean(args[1:])
			return
		case "watch":
			historyWatch()
			return
		}
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(1)
		}
		count = n
	}

	store := openHistory()
	defer store.Close()

	entries, err := store.Entries(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded. Enable logging with \"log\": true in config.")
		return
	}
	for _, e := range entries {
		fmt.Println(formatEntry(e))
	}
}

func historyClear() {
	store := openHistory()
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("History cleared.")
}

func historyClean(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: 'history clean' requires a day count\n")
		os.Exit(1)
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		fmt.Fprintf(os.Stderr, "Error: days must be a positive integer\n")
		os.Exit(1)
	}

	store := openHistory()
	defer store.Close()

	removed, err := store.Clean(days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Removed %d entries older than %d day(s).\n", removed, days)
}

// historyWatch polls for new runs and prints them as they appear.
// Interactive use only — refuses to run without a terminal.
func historyWatch() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: 'history watch' requires a terminal\n")
		os.Exit(1)
	}

	store := openHistory()
	defer store.Close()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", store.Path())

	// Run IDs are monotonic, so tracking the last seen one never skips a
	// run the way a timestamp cutoff would within the same second.
	var lastID int64
	if entries, err := store.Entries(1); err == nil && len(entries) > 0 {
		lastID = entries[0].ID
	}
	for {
		time.Sleep(watchInterval)
		entries, err := store.EntriesAfter(lastID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, e := range entries {
			fmt.Println(formatEntry(e))
			lastID = e.ID
		}
	}
}

func openHistory() *runlog.SQLiteStore {
	store, err := runlog.Open(runlog.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

// formatEntry renders one history row plus its touched files.
func formatEntry(e runlog.Entry) string {
	status := "ok"
	if !e.OK {
		status = "failed"
	}
	s := fmt.Sprintf("%s  %-6s %-6s %s",
		e.Time.Format("2006-01-02 15:04:05"), e.Tool, status, e.Detail)
	for _, f := range e.Files {
		s += "\n    " + f
	}
	return s
}
