package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TempFilePrefix marks in-flight dataset files. The leading dot keeps them
// out of discovery and away from the watcher.
const TempFilePrefix = ".equality-tmp-"

// writeFileAtomic replaces filename with data. The previous content stays
// intact until the new one is fully on disk.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return replaceFile(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// replaceFile streams fill into a temp file next to filename and renames it
// into place once fill, fsync and close have all succeeded.
func replaceFile(filename string, perm os.FileMode, fill func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(name)
		}
	}()

	if err = fill(tmp); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err = os.Chmod(name, perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err = os.Rename(name, filename); err != nil {
		return fmt.Errorf("failed to move dataset into %s: %w", filename, err)
	}
	return nil
}
