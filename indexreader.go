package cavehash

import (
	"fmt"
	"os"
	"strings"

	"github.com/gostonefire/cavehash/hashfunc"
	"github.com/gostonefire/cavehash/internal/conf"
	"github.com/gostonefire/cavehash/internal/file"
	"github.com/gostonefire/cavehash/internal/hash"
	"github.com/gostonefire/cavehash/record"
)

// IndexReaderConf - Is a struct to be passed in the call to OpenIndex and contains
// configuration that has to match what the index was built with.
//   - BucketCapacity is the number of record pointer slots per bucket, zero or less selects the default (30)
//   - HashAlgorithm is an optional custom bucket selection algorithm, nil selects the internal one
type IndexReaderConf struct {
	BucketCapacity int64
	HashAlgorithm  hashfunc.HashAlgorithm
}

// IndexReader - Resolves lookup keys to records using an extendible hash index file
// and the store it was built over. At the persisted depth exactly one bucket holds
// all candidate offsets for a key, there is no chaining across depths.
type IndexReader struct {
	store          *StoreReader
	indexFileName  string
	indexFile      *os.File
	indexFileSize  int64
	bucketCapacity int64
	hashAlgorithm  hashfunc.HashAlgorithm
	depth          int32
}

// OpenIndex - Returns a pointer to a new IndexReader instance given an existing index
// file and an open reader over the store it was built from. An empty index file is
// accepted and behaves as depth zero where no lookup ever matches. The store is
// borrowed, not owned, closing the reader leaves it open.
//   - indexFileName is the name of the index file to open
//   - store is an open reader over the associated store
//   - readerConf is an IndexReaderConf struct, it has to match the build configuration
//
// It returns:
//   - reader which is a pointer to the created instance
//   - err which is a standard Go type of error
func OpenIndex(indexFileName string, store *StoreReader, readerConf IndexReaderConf) (reader *IndexReader, err error) {
	bucketCapacity := readerConf.BucketCapacity
	if bucketCapacity <= 0 {
		bucketCapacity = conf.DefaultBucketCapacity
	}

	// If no HashAlgorithm was given then use the default internal
	hashAlgorithm := readerConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewBucketAlgorithm()
	}

	indexFile, indexFileSize, err := file.OpenReadOnlyFile(indexFileName)
	if err != nil {
		err = fmt.Errorf("error while opening index file: %s", err)
		return
	}

	var depth int32
	if indexFileSize != 0 {
		depth, err = file.ReadDepth(indexFile, indexFileSize)
		if err != nil {
			file.CloseFile(indexFile)
			err = fmt.Errorf("error while reading depth from index file: %s", err)
			return
		}
	}

	reader = &IndexReader{
		store:          store,
		indexFileName:  indexFileName,
		indexFile:      indexFile,
		indexFileSize:  indexFileSize,
		bucketCapacity: bucketCapacity,
		hashAlgorithm:  hashAlgorithm,
		depth:          depth,
	}

	return
}

// NumBuckets - Returns the number of buckets at the persisted depth
func (I *IndexReader) NumBuckets() int64 {
	return int64(1) << (I.depth + 1)
}

// Depth - Returns the persisted depth
func (I *IndexReader) Depth() int32 {
	return I.depth
}

// Lookup - Resolves a key to its record. The key is trimmed from surrounding
// whitespace before hashing, and candidates are confirmed against the store by
// comparing the trimmed stored key field for exact equality.
//   - key is the entry key to search for
//
// It returns:
//   - r is the first matching record if found, if not found an error of type NoRecordFound is also returned
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (I *IndexReader) Lookup(key string) (r record.Record, err error) {
	key = strings.TrimSpace(key)

	if I.indexFileSize == 0 {
		err = NoRecordFound{}
		return
	}

	bucketNo := I.hashAlgorithm.BucketNumber(key, I.NumBuckets())
	if bucketNo < 0 || bucketNo >= I.NumBuckets() {
		err = fmt.Errorf("hash algorithm returned bucket number (%d) outside table size (%d)", bucketNo, I.NumBuckets())
		return
	}

	_, pointers, err := file.GetBucket(I.indexFile, bucketNo, I.bucketCapacity)
	if err != nil {
		err = fmt.Errorf("error while reading bucket from index file: %s", err)
		return
	}

	for _, pointer := range pointers {
		r, err = I.store.ReadRecordAt(pointer)
		if err != nil {
			err = fmt.Errorf("error while resolving record pointer: %s", err)
			return
		}

		if r.Key() == key {
			return
		}
	}

	r = record.Record{}
	err = NoRecordFound{}

	return
}

// Close - Closes the index file. The store reader given at construction is left open.
func (I *IndexReader) Close() {
	file.CloseFile(I.indexFile)
	I.indexFile = nil
}
