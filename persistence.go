package salesdirectory

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/salesdirectory/internal/conf"
	"github.com/gostonefire/salesdirectory/internal/storage"
	"go.uber.org/zap"
	"io"
)

// Serialize - Writes the record count followed by every record as a fixed width block, in the same order as Records.
//   - w is where the data is written
//
// It returns:
//   - err is of type PersistenceFailure if something went wrong
func (D *Directory) Serialize(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	_, err = bw.Write(storage.CountToBytes(D.count))
	if err != nil {
		err = PersistenceFailure{msg: "error while writing record count", err: err}
		return
	}

	var n int64
	for record := range D.Records() {
		_, err = bw.Write(storage.RecordToBytes(record))
		if err != nil {
			err = PersistenceFailure{msg: fmt.Sprintf("error while writing record %d", n), err: err}
			return
		}
		n++
	}

	err = bw.Flush()
	if err != nil {
		err = PersistenceFailure{msg: "error while flushing records", err: err}
	}

	return
}

// Deserialize - Reads a record count followed by exactly that many fixed width records into a new directory.
// If the data ends early, is malformed, holds a customer id that is not positive or held twice, or holds more
// records than the directory accepts no directory is returned,
// the caller must then fall back to an empty or seeded directory.
//   - r is where the data is read from
//   - dirConf is the configuration for the new directory
//
// It returns:
//   - directory is a pointer to the loaded Directory, nil on failure
//   - err is of type PersistenceFailure or a standard error from NewDirectory
func Deserialize(r io.Reader, dirConf Conf) (directory *Directory, err error) {
	d, err := NewDirectory(dirConf)
	if err != nil {
		return
	}

	br := bufio.NewReader(r)

	buf := make([]byte, conf.CountLength)
	_, err = io.ReadFull(br, buf)
	if err != nil {
		err = PersistenceFailure{msg: "error while reading record count", err: err}
		return
	}
	count, err := storage.BytesToCount(buf)
	if err != nil {
		err = PersistenceFailure{msg: "malformed record count", err: err}
		return
	}

	if count > d.maxRecords {
		err = PersistenceFailure{msg: fmt.Sprintf("data holds %d records", count), err: DirectoryFull{}}
		return
	}

	records := make([]Record, count)
	buf = make([]byte, conf.RecordLength)
	for i := range records {
		_, err = io.ReadFull(br, buf)
		if err != nil {
			err = PersistenceFailure{msg: fmt.Sprintf("error while reading record %d of %d", i+1, count), err: err}
			return
		}
		records[i], err = storage.BytesToRecord(buf)
		if err != nil {
			err = PersistenceFailure{msg: fmt.Sprintf("malformed record %d of %d", i+1, count), err: err}
			return
		}
	}

	// Insert prepends, so going backwards rebuilds every chain in its saved order
	for i := len(records) - 1; i >= 0; i-- {
		err = d.ValidateID(records[i].CustomerID)
		if err != nil {
			err = PersistenceFailure{msg: fmt.Sprintf("malformed record %d of %d", i+1, count), err: err}
			return
		}
		err = d.Insert(records[i])
		if err != nil {
			err = PersistenceFailure{msg: fmt.Sprintf("unable to insert record %d of %d", i+1, count), err: err}
			return
		}
	}

	directory = d

	return
}

// SaveToFile - Writes the directory to a data file. The data is first written to a temporary file which then
// replaces the data file, so a failed save leaves any earlier data file untouched.
//   - fileName is the name of the data file (including path)
//
// It returns:
//   - err is of type PersistenceFailure if something went wrong
func (D *Directory) SaveToFile(fileName string) (err error) {
	f, err := storage.CreateTmpFile(fileName)
	if err != nil {
		err = PersistenceFailure{msg: "unable to save data file", err: err}
		return
	}

	err = D.Serialize(f)
	if err != nil {
		storage.DiscardTmpFile(f, fileName)
		return
	}

	err = storage.CommitTmpFile(f, fileName)
	if err != nil {
		err = PersistenceFailure{msg: "unable to save data file", err: err}
		return
	}

	D.logger.Info("saved data file", zap.String("file", fileName), zap.Int64("records", D.count))

	return
}

// LoadFromFile - Reads a data file written by SaveToFile into a new directory.
// A missing, zero length or truncated file results in an error and no directory.
//   - fileName is the name of the data file (including path)
//   - dirConf is the configuration for the new directory
//
// It returns:
//   - directory is a pointer to the loaded Directory, nil on failure
//   - err is of type PersistenceFailure or a standard error from NewDirectory
func LoadFromFile(fileName string, dirConf Conf) (directory *Directory, err error) {
	f, err := storage.OpenDataFile(fileName)
	if err != nil {
		err = PersistenceFailure{msg: "unable to load data file", err: err}
		return
	}
	defer func() { _ = f.Close() }()

	directory, err = Deserialize(f, dirConf)
	if err != nil {
		return
	}

	directory.logger.Info("loaded data file", zap.String("file", fileName), zap.Int64("records", directory.count))

	return
}
