package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks in-flight snapshot writes. The change watcher uses
// it to tell our own temp files apart from real dataset edits.
const TempFilePrefix = "attache-tmp-"

// snapshotPerm is the mode for the contacts and notes files.
const snapshotPerm = os.FileMode(0644)

// writeSnapshot replaces filename with data via a temp file in the same
// directory plus a rename, so a crash mid-write never leaves a truncated
// dataset behind.
func writeSnapshot(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(filename), err)
	}

	// CreateTemp opens 0600; the snapshot itself is plain user data.
	if err := os.Chmod(tmp.Name(), snapshotPerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filepath.Base(filename), err)
	}
	return nil
}
