// Package walker enumerates the Markdown documents of a vault, applying
// directory exclusions and filtering out special-format files.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// settingsDir is the vault's application settings folder. It is always
// pruned, independent of configuration.
const settingsDir = ".obsidian"

// specialSuffixes mark canvas/drawing files that carry the Markdown
// extension but hold no prose. Matched case-sensitively.
var specialSuffixes = []string{".canvas", ".excalidraw.md"}

// Options configures a vault walk.
type Options struct {
	// ExcludeDirs prunes any directory whose root-relative path contains
	// one of these substrings.
	ExcludeDirs []string
}

// Result holds the outcome of a vault walk.
type Result struct {
	// Files are slash-separated paths relative to the root, sorted
	// lexicographically.
	Files []string
	// SkippedSpecial counts Markdown-extension files excluded for their
	// special-format suffix.
	SkippedSpecial int
	// Errors collects entries that could not be visited. They do not stop
	// the walk.
	Errors []error
}

// Find walks root and returns every eligible Markdown document beneath it.
func Find(root string, opts Options) (*Result, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("walker: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: root is not a directory: %s", absRoot)
	}

	result := &Result{}
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			result.Errors = append(result.Errors, fmt.Errorf("walker: access %s: %w", path, walkErr))
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("walker: relativize %s: %w", path, err))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if d.Name() == settingsDir {
				return fs.SkipDir
			}
			for _, marker := range opts.ExcludeDirs {
				if marker != "" && strings.Contains(rel, marker) {
					return fs.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		if isSpecial(d.Name()) {
			result.SkippedSpecial++
			return nil
		}
		result.Files = append(result.Files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: walk: %w", err)
	}

	sort.Strings(result.Files)
	return result, nil
}

func isSpecial(name string) bool {
	for _, suffix := range specialSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
