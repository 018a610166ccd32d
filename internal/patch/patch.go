// Package patch applies literal, single-occurrence find/replace fixes to
// source files in place. There is deliberately no pattern language: every
// rule is an exact substring, and a file that doesn't contain it is left
// untouched.
package patch

import (
	"os"
	"strings"
)

// Rule is one literal fix applied to a single file.
type Rule struct {
	File    string `json:"file"`
	Find    string `json:"find"`
	Replace string `json:"replace"`
}

// DefaultRules returns the built-in fix set. It contains exactly one rule:
// the historical story-library.tsx repair, where a label expression had been
// written with escaped braces and broke the TSX parser.
func DefaultRules() []Rule {
	return []Rule{
		{
			File:    "client/src/pages/story-library.tsx",
			Find:    `(\{UIMessages.getLabel('STORY_PRIVATE_LABEL')\})`,
			Replace: `({UIMessages.getLabel('STORY_PRIVATE_LABEL')})`,
		},
	}
}

// Apply reads the file at path, replaces the first occurrence of the literal
// find string with replace, and writes the result back in place with the
// file's original permissions. It returns the number of replacements made
// (0 or 1). A pattern that does not occur is a no-op, not an error, which
// makes repeated application idempotent.
func Apply(path, find, replace string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content := string(data)
	if !strings.Contains(content, find) {
		return 0, nil
	}

	patched := strings.Replace(content, find, replace, 1)
	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return 0, err
	}
	return 1, nil
}

// ApplyRule applies a single rule relative to the current directory.
func ApplyRule(r Rule) (int, error) {
	return Apply(r.File, r.Find, r.Replace)
}
