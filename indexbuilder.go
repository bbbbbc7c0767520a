package cavehash

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/gostonefire/cavehash/hashfunc"
	"github.com/gostonefire/cavehash/internal/conf"
	"github.com/gostonefire/cavehash/internal/file"
	"github.com/gostonefire/cavehash/internal/hash"
)

// IndexBuilderConf - Is a struct to be passed in the call to NewIndexBuilder and contains
// configuration that affects index construction.
//   - IndexFileName is the name of the index file to create
//   - BucketCapacity is the number of record pointer slots per bucket, zero or less selects the default (30)
//   - HashAlgorithm is an optional custom bucket selection algorithm, nil selects the internal one
//   - Logger is an optional structured logger for build diagnostics, nil disables logging
type IndexBuilderConf struct {
	IndexFileName  string
	BucketCapacity int64
	HashAlgorithm  hashfunc.HashAlgorithm
	Logger         *zap.Logger
}

// BucketStats - Statistics over the final bucket layout of a built index
//   - NumBuckets is the total number of buckets
//   - Lowest and Highest are the minimum and maximum bucket occupancy
//   - Mean and Median are computed over all bucket occupancies
type BucketStats struct {
	NumBuckets int64
	Lowest     int64
	Highest    int64
	Mean       float64
	Median     float64
}

// IndexBuilder - Builds an extendible hash index file over a finished store. The
// builder starts at depth zero and on any bucket overflow doubles the bucket count,
// resets every occupancy and restarts the full insertion pass at the new depth. It
// terminates when one full pass completes with zero overflow, which makes the final
// depth the smallest at which every record fits.
type IndexBuilder struct {
	store          *StoreReader
	indexFileName  string
	indexFile      *os.File
	bucketCapacity int64
	hashAlgorithm  hashfunc.HashAlgorithm
	logger         *zap.Logger
	depth          int32
}

// NewIndexBuilder - Returns a pointer to a new IndexBuilder instance. It always
// creates a new index file (or opens and truncates an existing file). The store is
// borrowed, not owned, closing the builder leaves it open.
//   - store is an open reader over the finished store to index
//   - builderConf is an IndexBuilderConf struct providing configuration
//
// It returns:
//   - builder which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewIndexBuilder(store *StoreReader, builderConf IndexBuilderConf) (builder *IndexBuilder, err error) {
	if builderConf.IndexFileName == "" {
		err = fmt.Errorf("index file name can not be empty")
		return
	}

	bucketCapacity := builderConf.BucketCapacity
	if bucketCapacity <= 0 {
		bucketCapacity = conf.DefaultBucketCapacity
	}

	// If no HashAlgorithm was given then use the default internal
	hashAlgorithm := builderConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewBucketAlgorithm()
	}

	logger := builderConf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	indexFile, err := file.CreateNewFile(builderConf.IndexFileName)
	if err != nil {
		err = fmt.Errorf("error while creating index file: %s", err)
		return
	}

	builder = &IndexBuilder{
		store:          store,
		indexFileName:  builderConf.IndexFileName,
		indexFile:      indexFile,
		bucketCapacity: bucketCapacity,
		hashAlgorithm:  hashAlgorithm,
		logger:         logger,
	}

	return
}

// NumBuckets - Returns the number of buckets at the current depth
func (I *IndexBuilder) NumBuckets() int64 {
	return int64(1) << (I.depth + 1)
}

// Depth - Returns the current depth
func (I *IndexBuilder) Depth() int32 {
	return I.depth
}

// Build - Scans the store in record order and inserts every record's offset into its
// address-derived bucket, growing the index on overflow, then persists the final depth.
//
// It returns:
//   - err which is a standard Go type of error
func (I *IndexBuilder) Build() (err error) {
	err = file.InitBucketRange(I.indexFile, 0, I.NumBuckets(), I.bucketCapacity)
	if err != nil {
		err = fmt.Errorf("error while initializing index buckets: %s", err)
		return
	}

	i := int64(0)
	for i < I.store.NumRecords() {
		offset := i * I.store.RecordSize()

		r, rErr := I.store.ReadRecordAt(offset)
		if rErr != nil {
			err = fmt.Errorf("error while scanning store: %s", rErr)
			return
		}

		bucketNo := I.hashAlgorithm.BucketNumber(r.Key(), I.NumBuckets())
		if bucketNo < 0 || bucketNo >= I.NumBuckets() {
			err = fmt.Errorf("hash algorithm returned bucket number (%d) outside table size (%d)", bucketNo, I.NumBuckets())
			return
		}

		ok, aErr := file.AppendPointer(I.indexFile, bucketNo, I.bucketCapacity, offset)
		if aErr != nil {
			err = fmt.Errorf("error while inserting record pointer: %s", aErr)
			return
		}

		if !ok {
			// Bucket overflow, double the table and restart the full insertion pass
			err = file.ClearOccupancyRange(I.indexFile, 0, I.NumBuckets(), I.bucketCapacity)
			if err != nil {
				err = fmt.Errorf("error while clearing bucket occupancies: %s", err)
				return
			}

			err = file.InitBucketRange(I.indexFile, I.NumBuckets(), I.NumBuckets()*2, I.bucketCapacity)
			if err != nil {
				err = fmt.Errorf("error while initializing doubled bucket range: %s", err)
				return
			}

			I.depth++
			i = 0

			I.logger.Info("bucket overflow, index doubled",
				zap.Int32("depth", I.depth),
				zap.Int64("numBuckets", I.NumBuckets()),
			)

			continue
		}

		i++
	}

	err = file.WriteDepth(I.indexFile, I.NumBuckets(), I.bucketCapacity, I.depth)
	if err != nil {
		err = fmt.Errorf("error while writing depth to index file: %s", err)
		return
	}

	I.logger.Info("index built",
		zap.Int32("depth", I.depth),
		zap.Int64("numBuckets", I.NumBuckets()),
		zap.Int64("numRecords", I.store.NumRecords()),
	)

	return
}

// Stats - Runs a read-only diagnostic pass over the final bucket layout and returns
// occupancy statistics.
//
// It returns:
//   - stats is a BucketStats struct
//   - err which is a standard Go type of error
func (I *IndexBuilder) Stats() (stats BucketStats, err error) {
	numBuckets := I.NumBuckets()
	occupancies := make([]int64, numBuckets)

	var sum int64
	for i := int64(0); i < numBuckets; i++ {
		occupancies[i], err = file.ReadOccupancy(I.indexFile, i, I.bucketCapacity)
		if err != nil {
			err = fmt.Errorf("error while reading bucket occupancy: %s", err)
			return
		}
		sum += occupancies[i]
	}

	sort.Slice(occupancies, func(a, b int) bool { return occupancies[a] < occupancies[b] })

	var median float64
	if numBuckets%2 == 0 {
		median = float64(occupancies[numBuckets/2-1]+occupancies[numBuckets/2]) / 2.0
	} else {
		median = float64(occupancies[numBuckets/2])
	}

	stats = BucketStats{
		NumBuckets: numBuckets,
		Lowest:     occupancies[0],
		Highest:    occupancies[numBuckets-1],
		Mean:       float64(sum) / float64(numBuckets),
		Median:     median,
	}

	return
}

// Close - Closes the index file. The store reader given at construction is left open.
func (I *IndexBuilder) Close() {
	file.CloseFile(I.indexFile)
	I.indexFile = nil
}
