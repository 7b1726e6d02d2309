package logic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ahmedkhursheed2006/goaes/internal/config"
	"github.com/ahmedkhursheed2006/goaes/pkg/pathmatch"
)

// RunCheck reports how many files each include/exclude pattern matches under
// the given paths. A pattern matching nothing is an error, so typos in
// pattern files surface before an encrypt run silently skips everything.
func RunCheck(cfg *config.Config) error {
	includes, excludes, err := mergedPatterns(cfg)
	if err != nil {
		return err
	}

	if len(includes)+len(excludes) == 0 {
		return errors.New("no include or exclude patterns to check")
	}

	candidates, err := listFiles(cfg.Files)
	if err != nil {
		return err
	}

	failed := reportMatches("include", includes, candidates, cfg.Quiet)
	failed += reportMatches("exclude", excludes, candidates, cfg.Quiet)

	if failed > 0 {
		return fmt.Errorf("%d pattern(s) matched no files", failed)
	}

	return nil
}

// listFiles gathers every file under the given paths, as slash-separated
// relative paths, deduplicated and sorted.
func listFiles(args []string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			seen[filepath.ToSlash(filepath.Clean(arg))] = struct{}{}

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() {
				seen[filepath.ToSlash(filepath.Clean(path))] = struct{}{}
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths, nil
}

// reportMatches prints a per-pattern match count and returns how many
// patterns matched zero files (or failed to compile).
func reportMatches(kind string, patterns, candidates []string, quiet bool) int {
	var failed int

	for _, pattern := range patterns {
		count, err := countMatches(pattern, candidates)

		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "%s: %s - invalid pattern: %v\n", kind, pattern, err)

			failed++
		case count == 0:
			fmt.Fprintf(os.Stderr, "%s: %s - 0 files (ERROR)\n", kind, pattern)

			failed++
		case !quiet:
			fmt.Fprintf(os.Stderr, "%s: %s - %d files\n", kind, pattern, count)
		}
	}

	return failed
}

func countMatches(pattern string, candidates []string) (int, error) {
	// Candidates are cleaned paths, so a leading "./" would never match.
	pattern = strings.TrimPrefix(pattern, "./")

	var count int

	for _, path := range candidates {
		ok, err := pathmatch.Match(pattern, path)
		if err != nil {
			return 0, err
		}

		if ok {
			count++
		}
	}

	return count, nil
}
