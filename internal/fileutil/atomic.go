// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ownerReadWrite = 0o600
	executableBits = 0o111
)

// WriteAtomic writes data to outPath through a temp file in the target
// directory followed by a rename, so readers never observe a partial file.
// The executable bit is carried over from src; when preserveTimestamps is
// set, so is the modification time. Returns the output size.
func WriteAtomic(src, outPath string, data []byte, preserveTimestamps bool) (size int64, err error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", src, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:gosec // best-effort cleanup
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	perm := os.FileMode(ownerReadWrite)

	if info.Mode()&executableBits != 0 {
		perm |= executableBits
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return finalize(outPath, preserveTimestamps, info.ModTime())
}

// finalize optionally preserves timestamps and returns the output file size.
func finalize(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
