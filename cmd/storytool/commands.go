package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/config"
	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/icon"
	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/paths"
	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/patch"
	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/runlog"
)

func patchCmd(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	applied := 0
	var touched []string
	for _, r := range cfg.Patches {
		n, err := patch.ApplyRule(r)
		if err != nil {
			logRun(cfg, "patch", err.Error(), false, touched)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if n > 0 {
			fmt.Printf("Fixed %s\n", r.File)
			applied += n
			touched = append(touched, r.File)
		}
	}

	if applied == 0 {
		fmt.Println("Nothing to patch.")
	}
	logRun(cfg, "patch", patchDetail(applied), true, touched)
}

func patchDetail(applied int) string {
	return fmt.Sprintf("%d replacement(s)", applied)
}

func iconsCmd(configPath, outDir string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Output dir priority: CLI --out > config icon_dir > client/public
	if outDir == "" {
		outDir = cfg.Options.IconDir
	}

	written, err := icon.Generate(outDir, cfg.Options.Letter, cfg.Options.Font, cfg.Options.Sizes)
	for _, p := range written {
		fmt.Printf("Created %s\n", p)
	}
	if err != nil {
		logRun(cfg, "icons", err.Error(), false, written)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("PWA icons generated successfully!")
	logRun(cfg, "icons", iconsDetail(written), true, written)
}

func iconsDetail(written []string) string {
	return fmt.Sprintf("%d file(s)", len(written))
}

// initCmd writes the built-in default config so users have something to
// edit. Refuses to clobber an existing file.
func initCmd(configPath string) {
	path := configPath
	if path == "" {
		path = filepath.Join(paths.DataDir(), paths.ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists; remove it first or pass --config with another path\n", path)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	cfg.Options.Log = true

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := paths.AtomicWrite(path, append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default config to %s\n", path)
	fmt.Println("Edit it to change icon sizes, the cover letter, and patch rules.")
}

// logRun records the invocation when history logging is enabled.
// Best-effort: a storage failure only prints a warning.
func logRun(cfg config.Config, tool, detail string, ok bool, files []string) {
	if !cfg.Options.Log {
		return
	}
	store, err := runlog.Open(runlog.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "runlog: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Log(tool, detail, ok, files); err != nil {
		fmt.Fprintf(os.Stderr, "runlog: %v\n", err)
	}
}
