package main

import (
	"fmt"
	"os"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	configPath := ""
	outDir := ""

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --config requires a file path\n")
				os.Exit(1)
			}
		case "--out", "-o":
			if i+1 < len(args) {
				outDir = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --out requires a directory path\n")
				os.Exit(1)
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "patch":
		patchCmd(configPath)
	case "icons":
		iconsCmd(configPath, outDir)
	case "init":
		initCmd(configPath)
	case "history":
		historyCmd(filtered[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(os.Stderr, "Run 'storytool help' for usage.\n")
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("storytool %s (built %s)\n", version, buildDate)
}

func printUsage() {
	fmt.Printf("storytool %s - Build helpers for the storytelling web app\n", version)
	fmt.Println(`
Usage:
  storytool [options] <command>

Options:
  --config, -c <path>    Path to storytool-config.json
  --out, -o <dir>        Icon output directory (icons command only)

Commands:
  patch                  Apply the configured source fixes in place
  icons                  Generate the PWA icons (icon-192x192.png, icon-512x512.png)
  init                   Write a starter config file
  history [n]            Show the last n recorded runs (default 10)
  history clean <days>   Remove history entries older than <days> days
  history clear          Delete all history
  history watch          Follow new runs as they are recorded
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>                          (explicit)
  2. storytool-config.json next to binary     (portable)
  3. ~/.config/storytool/storytool-config.json (user default)
  4. built-in defaults                        (no file needed)

Examples:
  storytool icons                  Write icons under client/public
  storytool icons -o dist/icons    Write icons somewhere else
  storytool patch                  Apply the story-library.tsx fix`)
}
