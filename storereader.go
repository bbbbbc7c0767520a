package cavehash

import (
	"fmt"
	"os"

	"github.com/gostonefire/cavehash/internal/file"
	"github.com/gostonefire/cavehash/record"
)

// StoreReader - Provides random read access to a finished store file. On open it
// reads the trailing width table footer and from it derives the record size and
// record count. A file smaller than or equal to the footer size is treated as an
// empty store (zero widths, zero record size, zero count) rather than a failure.
type StoreReader struct {
	fileName   string
	storeFile  *os.File
	widths     record.FieldWidths
	recordSize int64
	numRecords int64
}

// OpenStore - Returns a pointer to a new StoreReader instance given an existing
// store file.
//   - fileName is the name of the store file to open
//
// It returns:
//   - store which is a pointer to the created instance
//   - err which is a standard Go type of error
func OpenStore(fileName string) (store *StoreReader, err error) {
	storeFile, fileSize, err := file.OpenReadOnlyFile(fileName)
	if err != nil {
		err = fmt.Errorf("error while opening store file: %s", err)
		return
	}

	store = &StoreReader{
		fileName:  fileName,
		storeFile: storeFile,
	}

	// An undersized store degrades to zero records rather than failing
	if fileSize <= file.FooterSize() {
		return
	}

	widths, err := file.ReadWidths(storeFile, fileSize)
	if err != nil {
		file.CloseFile(storeFile)
		store = nil
		err = fmt.Errorf("error while reading footer from store file: %s", err)
		return
	}

	store.widths = widths
	store.recordSize = widths.RecordSize()
	store.numRecords = (fileSize - file.FooterSize()) / store.recordSize

	return
}

// Widths - Returns the width table read from the store footer
func (S *StoreReader) Widths() record.FieldWidths {
	return S.widths
}

// RecordSize - Returns the size in bytes of one encoded record, zero for an empty store
func (S *StoreReader) RecordSize() int64 {
	return S.recordSize
}

// NumRecords - Returns the number of records in the store
func (S *StoreReader) NumRecords() int64 {
	return S.numRecords
}

// ReadRecordAt - Reads and decodes the record at the given byte offset.
//   - offset is the byte offset of the record, i.e. record index times record size
//
// It returns:
//   - r is the decoded record
//   - err is an OffsetOutOfRange error if the offset is negative or beyond the record
//     region, or a standard error if something else went wrong
func (S *StoreReader) ReadRecordAt(offset int64) (r record.Record, err error) {
	if offset < 0 || offset >= S.numRecords*S.recordSize {
		err = OffsetOutOfRange{Offset: offset}
		return
	}

	buf, err := file.ReadRecord(S.storeFile, offset, S.recordSize)
	if err != nil {
		err = fmt.Errorf("error while reading record from store file: %s", err)
		return
	}

	r, err = record.Decode(buf, S.widths)

	return
}

// Close - Closes the store file
func (S *StoreReader) Close() {
	file.CloseFile(S.storeFile)
	S.storeFile = nil
}
