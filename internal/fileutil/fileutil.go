// ABOUTME: File helpers shared by the JSON and spreadsheet writers.
// ABOUTME: Output is staged in a pending file and renamed so failures leave nothing behind.

package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// ParentDir returns the directory an output path will be written into, or
// "" when it is the working directory.
func ParentDir(path string) string {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return ""
	}
	return dir
}

// DirExists reports whether the parent directory of path exists. The
// working directory always does.
func DirExists(path string) bool {
	dir := ParentDir(path)
	if dir == "" {
		return true
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// WriteAtomic streams content into a pending file next to path and
// replaces path with it once write succeeds.
func WriteAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(perm),
	)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer pending.Cleanup() //nolint:errcheck // No-op once replaced

	if err := write(pending); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
