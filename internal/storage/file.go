package storage

import (
	"fmt"
	"github.com/gostonefire/salesdirectory/internal/conf"
	"os"
	"path/filepath"
)

// GetTmpFileName - Return the name of the temporary file a data file is written to before it replaces the existing one
func GetTmpFileName(fileName string) string {
	return fmt.Sprintf("%s.tmp", fileName)
}

// OpenDataFile - Opens an existing data file for reading and does some rudimentary checks of its validity
func OpenDataFile(fileName string) (filePtr *os.File, err error) {
	stat, err := os.Stat(fileName)
	if err != nil {
		err = fmt.Errorf("data file not found: %w", err)
		return
	}
	if stat.IsDir() {
		err = fmt.Errorf("data file %s is a directory", fileName)
		return
	}
	if stat.Size() < conf.CountLength {
		err = fmt.Errorf("actual file size (%d) is smaller than minimum data file size (%d)", stat.Size(), conf.CountLength)
		return
	}

	filePtr, err = os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("unable to open existing data file: %w", err)
	}

	return
}

// CreateTmpFile - Creates the temporary file for fileName. If it already exists it will be truncated to zero length.
func CreateTmpFile(fileName string) (filePtr *os.File, err error) {
	filePtr, err = os.OpenFile(GetTmpFileName(fileName), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create temporary data file: %w", err)
	}

	return
}

// CommitTmpFile - Syncs and closes the temporary file and renames it to fileName. On failure the temporary
// file is removed and the existing data file is left as it was.
func CommitTmpFile(filePtr *os.File, fileName string) (err error) {
	tmpFileName := GetTmpFileName(fileName)

	err = filePtr.Sync()
	if err != nil {
		_ = filePtr.Close()
		_ = os.Remove(tmpFileName)
		err = fmt.Errorf("error while syncing temporary data file: %w", err)
		return
	}

	err = filePtr.Close()
	if err != nil {
		_ = os.Remove(tmpFileName)
		err = fmt.Errorf("error while closing temporary data file: %w", err)
		return
	}

	err = os.Rename(tmpFileName, fileName)
	if err != nil {
		_ = os.Remove(tmpFileName)
		err = fmt.Errorf("error while renaming temporary data file: %w", err)
		return
	}

	// The rename is already done, a failing directory sync is not reported
	syncDir(filepath.Dir(fileName))

	return
}

// DiscardTmpFile - Closes and removes the temporary file after a failed write
func DiscardTmpFile(filePtr *os.File, fileName string) {
	if filePtr != nil {
		_ = filePtr.Close()
	}
	_ = os.Remove(GetTmpFileName(fileName))
}

// syncDir - Syncs directory metadata so that a rename is persisted
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
