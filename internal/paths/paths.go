package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "storytool"
	ConfigFileName = "storytool-config.json"
	HistoryDBName  = "history.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// AtomicWrite writes data through a sibling temp file and renames it into
// place, so readers never observe a truncated file. Creates the parent
// directory if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns where storytool keeps its config and history database:
// %APPDATA%\storytool on Windows, ~/.config/storytool elsewhere, with
// os.TempDir()/storytool as a last resort.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
