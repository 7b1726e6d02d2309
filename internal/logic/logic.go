// Package logic drives a full encrypt or decrypt run: file selection,
// processing, and the optional stats summary.
package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ahmedkhursheed2006/goaes/internal/config"
	"github.com/ahmedkhursheed2006/goaes/internal/encryption"
	"github.com/ahmedkhursheed2006/goaes/internal/filter"
)

// Run selects the files named by the configuration and encrypts or decrypts
// them. With Dry set it only prints what a real run would do.
func Run(cfg *config.Config) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		return dryRun(cfg, scanned, excluded, start)
	}

	proc, err := encryption.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(stats{
			scanned:   scanned,
			excluded:  excluded,
			processed: processed,
			errored:   errored,
			totalSize: totalSize,
			duration:  time.Since(start),
		})
	}

	if err != nil {
		return fmt.Errorf("processing files: %w", err)
	}

	return nil
}

// mergedPatterns combines the include/exclude flags with any pattern files
// named by --include-from/--exclude-from.
func mergedPatterns(cfg *config.Config) (includes, excludes []string, err error) {
	includes = append(includes, cfg.Include...)
	excludes = append(excludes, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	return includes, excludes, nil
}

// resolveFiles replaces cfg.Files (the positional arguments) with the
// concrete list of files to process and returns the number of candidates
// scanned. Decryption defaults to picking up only files with the encrypted
// suffix; encryption always excludes them, so a second run never
// double-encrypts.
func resolveFiles(cfg *config.Config) (int, error) {
	includes, excludes, err := mergedPatterns(cfg)
	if err != nil {
		return 0, err
	}

	hasIncludes := len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	if cfg.Decrypt && !hasIncludes {
		includes = append(includes, "*"+cfg.EncryptSuffix)
		hasIncludes = true
	}

	if !cfg.Decrypt {
		excludes = append(excludes, "*"+cfg.EncryptSuffix)
	}

	sel, err := filter.Resolve(cfg.Files, filter.Options{
		Includes:       includes,
		Excludes:       excludes,
		RequireInclude: hasIncludes,
	})
	if err != nil {
		return sel.Scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = sel.Files

	return sel.Scanned, nil
}

// dryRun prints the input/output pairs a real run would produce, without
// touching any file.
func dryRun(cfg *config.Config, scanned, excluded int, start time.Time) error {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Printf("Processed %q -> %q\n", file, outputPath(file, cfg)) //nolint:forbidigo
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(stats{
			scanned:   scanned,
			excluded:  excluded,
			processed: len(cfg.Files),
			totalSize: totalSize,
			duration:  time.Since(start),
		})
	}

	return nil
}

// outputPath mirrors the processor's output naming for dry runs.
func outputPath(filename string, cfg *config.Config) string {
	ext := cfg.EncryptSuffix

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.EncryptSuffix)
		ext = cfg.DecryptSuffix
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}

type stats struct {
	scanned   int
	excluded  int
	processed int
	errored   int
	totalSize int64
	duration  time.Duration
}

func printStats(s stats) {
	bold := color.New(color.Bold)

	errColor := color.New(color.FgGreen)
	if s.errored > 0 {
		errColor = color.New(color.FgRed)
	}

	bold.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", s.scanned)
	fmt.Fprintf(os.Stderr, "  Excluded:  %d\n", s.excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", s.processed)
	errColor.Fprintf(os.Stderr, "  Errors:    %d\n", s.errored)
	//nolint:gosec // totalSize is a sum of file sizes, never negative
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, s.totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", s.duration.Round(time.Millisecond))
}
