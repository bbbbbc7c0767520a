package cavehash

import (
	"fmt"
	"os"

	"github.com/gostonefire/cavehash/internal/file"
	"github.com/gostonefire/cavehash/record"
)

// StoreWriter - Writes fixed-width encoded records sequentially to a store file and
// appends the width table footer when closed. The caller is responsible for supplying
// records in ascending key order, the writer trusts this without re-validating.
type StoreWriter struct {
	fileName   string
	storeFile  *os.File
	widths     record.FieldWidths
	numRecords int64
}

// NewStoreWriter - Returns a pointer to a new StoreWriter instance. It always creates
// a new store file (or opens and truncates an existing file), hence deleting all
// existing data.
//   - fileName is the name of the store file to create
//   - widths is the width table computed by ingestion over the whole dataset
//
// It returns:
//   - writer which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewStoreWriter(fileName string, widths record.FieldWidths) (writer *StoreWriter, err error) {
	storeFile, err := file.CreateNewFile(fileName)
	if err != nil {
		err = fmt.Errorf("error while creating store file: %s", err)
		return
	}

	writer = &StoreWriter{
		fileName:  fileName,
		storeFile: storeFile,
		widths:    widths,
	}

	return
}

// Write - Appends one record to the store file in its fixed-width encoded form
func (S *StoreWriter) Write(r record.Record) (err error) {
	_, err = S.storeFile.Write(record.Encode(r, S.widths))
	if err != nil {
		err = fmt.Errorf("error while writing record to store file: %s", err)
		return
	}

	S.numRecords++

	return
}

// NumRecords - Returns the number of records written so far
func (S *StoreWriter) NumRecords() int64 {
	return S.numRecords
}

// Close - Appends the width table footer and closes the store file. After a
// successful Close the store is complete and read-only thereafter.
func (S *StoreWriter) Close() (err error) {
	defer func() {
		file.CloseFile(S.storeFile)
		S.storeFile = nil
	}()

	err = file.WriteWidths(S.storeFile, S.widths)
	if err != nil {
		err = fmt.Errorf("error while writing footer to store file: %s", err)
	}

	return
}
