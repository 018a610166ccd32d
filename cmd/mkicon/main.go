// mkicon renders the story-book icon PNG at an arbitrary size.
// Usage: go run ./cmd/mkicon <size> <output.png>
package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/icon"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: mkicon <size> <output.png>")
		os.Exit(1)
	}
	size, err := strconv.Atoi(os.Args[1])
	if err != nil || size <= 0 {
		fmt.Fprintln(os.Stderr, "mkicon: size must be a positive integer")
		os.Exit(1)
	}
	img := icon.Draw(size)
	f, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkicon: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "mkicon: %v\n", err)
		os.Exit(1)
	}
}
