// Package filter turns positional arguments plus include/exclude patterns
// into the concrete list of files to process. Patterns use find -path
// semantics, matched against slash-separated relative paths.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahmedkhursheed2006/goaes/pkg/pathmatch"
)

// Options controls how directory walks are filtered.
type Options struct {
	// Includes holds patterns a path must match to be selected.
	Includes []string

	// Excludes holds patterns that remove a path even when included.
	Excludes []string

	// RequireInclude is set when include filtering was explicitly requested.
	// Without it an empty Includes list selects everything.
	RequireInclude bool
}

// Selection is the outcome of resolving arguments against Options.
type Selection struct {
	// Files are the matched paths, deduplicated, in walk order.
	Files []string

	// Scanned counts every candidate file seen, matched or not.
	Scanned int
}

type matcher struct {
	includes *pathmatch.Matcher
	excludes *pathmatch.Matcher
	required bool
}

func compile(opts Options) (*matcher, error) {
	inc, err := pathmatch.NewMatcher(trimDotSlash(opts.Includes))
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(trimDotSlash(opts.Excludes))
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &matcher{includes: inc, excludes: exc, required: opts.RequireInclude}, nil
}

// keep reports whether the slash-separated relative path survives filtering.
// Excludes always win over includes.
func (m *matcher) keep(path string) bool {
	if m.required && !m.includes.MatchAny(path) {
		return false
	}

	return !m.excludes.MatchAny(path)
}

// trimDotSlash strips a leading "./" from each pattern so patterns written
// against shell completions still match cleaned paths.
func trimDotSlash(patterns []string) []string {
	out := make([]string, len(patterns))

	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}

	return out
}

// Resolve expands args into a Selection. Arguments naming a plain file are
// taken as-is, bypassing pattern filtering; arguments naming a directory are
// walked recursively with opts applied to every regular file found.
func Resolve(args []string, opts Options) (Selection, error) {
	var sel Selection

	for _, arg := range args {
		if err := validatePath(arg); err != nil {
			return Selection{}, err
		}
	}

	m, err := compile(opts)
	if err != nil {
		return Selection{}, err
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}

		seen[path] = struct{}{}
		sel.Files = append(sel.Files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return Selection{}, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			sel.Scanned++

			add(arg)

			continue
		}

		if err := walkInto(arg, m, &sel, add); err != nil {
			return Selection{}, err
		}
	}

	if len(sel.Files) == 0 {
		return sel, fmt.Errorf("no files matched the provided patterns: %v", args)
	}

	return sel, nil
}

// walkInto walks root recursively, feeding every surviving file to add.
// Reported paths are relative to the working directory.
func walkInto(root string, m *matcher, sel *Selection, add func(string)) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		sel.Scanned++

		if m.keep(filepath.ToSlash(filepath.Clean(path))) {
			add(path)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %q: %w", root, err)
	}

	return nil
}

// validatePath rejects arguments that escape the current working directory.
func validatePath(path string) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute paths are not allowed: %q", path)
	}

	if strings.HasPrefix(filepath.Clean(path), "..") {
		return fmt.Errorf("paths must be within the current working directory: %q", path)
	}

	return nil
}
