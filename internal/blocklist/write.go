package blocklist

import (
	// standard
	"fmt"
	"os"
	"path/filepath"
	// external
	// local
)

// WriteFile atomically replaces filePath with the rendered document.
// The content goes to a temp file in the same directory first, then a
// rename swaps it in, so an interrupted run never leaves a partial
// target behind.
func (d *Document) WriteFile(filePath string) error {
	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("can't create temp file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op once the rename succeeded

	if _, err := tmp.Write(d.Render()); err != nil {
		tmp.Close()
		return fmt.Errorf("can't write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("can't close %q: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("can't chmod %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("can't replace %q: %w", filePath, err)
	}
	return nil
}
