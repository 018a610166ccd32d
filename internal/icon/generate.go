package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/paths"
)

// DefaultOutDir is where the web manifest expects the icons.
const DefaultOutDir = "client/public"

// DefaultSizes are the PWA icon sizes the manifest references.
var DefaultSizes = []int{192, 512}

// FileName returns the canonical icon file name for a square size.
func FileName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// Generate renders one icon per size into outDir, creating the directory if
// needed, and returns the paths written in order. Existing files are
// overwritten without confirmation. On error the paths already written are
// returned alongside it; earlier files are not cleaned up.
func Generate(outDir, letter, fontPath string, sizes []int) ([]string, error) {
	if err := os.MkdirAll(outDir, paths.DirPerm); err != nil {
		return nil, err
	}
	var written []string
	for _, size := range sizes {
		p := filepath.Join(outDir, FileName(size))
		if err := writePNG(p, DrawLetter(size, letter, fontPath)); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	return written, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
