// Package writer exposes the file sink .reg documents are written to.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileMode is the permission of every written file.
const FileMode os.FileMode = 0o644

// FileWriter writes documents to a filesystem atomically.
type FileWriter struct {
	Fs afero.Fs
}

// New returns a FileWriter over fs, or over the OS filesystem if fs is nil.
func New(fs afero.Fs) *FileWriter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileWriter{Fs: fs}
}

// Exists reports whether path exists.
func (w *FileWriter) Exists(path string) (bool, error) {
	ok, err := afero.Exists(w.Fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return ok, nil
}

// WriteFile writes buf to path atomically via temp file + rename.
func (w *FileWriter) WriteFile(path string, buf []byte) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(path)
	tmpFile, err := afero.TempFile(w.Fs, dir, ".changefont-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = w.Fs.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	// Sync to disk
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	// TempFile creates 0600; the documents are meant to be shared
	if chmodErr := w.Fs.Chmod(tmpPath, FileMode); chmodErr != nil {
		_ = w.Fs.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	// Atomic rename
	if renameErr := w.Fs.Rename(tmpPath, path); renameErr != nil {
		_ = w.Fs.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
