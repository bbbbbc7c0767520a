package file

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gostonefire/cavehash/internal/conf"
	"github.com/gostonefire/cavehash/record"
)

// BucketSize - Returns the physical size in bytes of one bucket given its capacity.
// A bucket occupies the same number of bytes regardless of occupancy.
func BucketSize(capacity int64) int64 {
	return conf.OccupancyBytes + capacity*conf.PointerBytes
}

// FooterSize - Returns the size in bytes of the store file footer
func FooterSize() int64 {
	return int64(record.NumTextFields) * conf.WidthBytes
}

// CreateNewFile - Creates a new file for writing. If it already exists it will first be
// truncated to zero length, hence deleting all existing data.
func CreateNewFile(fileName string) (filePtr *os.File, err error) {
	filePtr, err = os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create new file: %s", err)
	}

	return
}

// OpenReadOnlyFile - Opens an existing file for reading and returns its current size
func OpenReadOnlyFile(fileName string) (filePtr *os.File, fileSize int64, err error) {
	stat, err := os.Stat(fileName)
	if err != nil {
		err = fmt.Errorf("file not found: %s", fileName)
		return
	}
	fileSize = stat.Size()

	filePtr, err = os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("unable to open existing file: %s", err)
	}

	return
}

// CloseFile - Closes a file, syncing it first. It is a no-op on a nil file pointer.
func CloseFile(filePtr *os.File) {
	if filePtr != nil {
		_ = filePtr.Sync()
		_ = filePtr.Close()
	}
}

// RemoveFile - Removes a file, make sure to close it first before calling this function
func RemoveFile(fileName string) (err error) {
	// Only try to remove if exists, and is not by accident a directory (could happen when testing things out)
	if stat, ok := os.Stat(fileName); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(fileName)
			if err != nil {
				err = fmt.Errorf("error while removing file: %s", err)
				return
			}
		}
	}

	return
}

// WriteWidths - Appends the width table footer at the current end of the store file
func WriteWidths(f *os.File, widths record.FieldWidths) (err error) {
	_, err = f.Seek(0, io.SeekEnd)
	if err != nil {
		return
	}

	_, err = f.Write(widthsToBytes(widths))

	return
}

// ReadWidths - Reads the width table footer trailing the record region of a store file
func ReadWidths(f *os.File, fileSize int64) (widths record.FieldWidths, err error) {
	_, err = f.Seek(fileSize-FooterSize(), io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, FooterSize())
	_, err = io.ReadFull(f, buf)
	if err != nil {
		return
	}

	widths, err = bytesToWidths(buf)

	return
}

// ReadRecord - Reads one encoded record at the given byte offset in the store file
func ReadRecord(f *os.File, offset, recordSize int64) (buf []byte, err error) {
	_, err = f.Seek(offset, io.SeekStart)
	if err != nil {
		return
	}

	buf = make([]byte, recordSize)
	_, err = io.ReadFull(f, buf)

	return
}

// InitBucketRange - Initializes a range of buckets in the index file by setting their
// occupancy to zero and filling every record pointer slot with the nil pointer sentinel.
// The range covers bucket numbers start (inclusive) to end (exclusive).
func InitBucketRange(f *os.File, start, end, capacity int64) (err error) {
	buf := emptyBucketBytes(capacity)

	for i := start; i < end; i++ {
		_, err = f.Seek(BucketSize(capacity)*i, io.SeekStart)
		if err != nil {
			return
		}

		_, err = f.Write(buf)
		if err != nil {
			return
		}
	}

	return
}

// ClearOccupancyRange - Resets the occupancy of each bucket in the given range to zero
// without altering the pointer slots
func ClearOccupancyRange(f *os.File, start, end, capacity int64) (err error) {
	buf := make([]byte, conf.OccupancyBytes)

	for i := start; i < end; i++ {
		_, err = f.Seek(BucketSize(capacity)*i, io.SeekStart)
		if err != nil {
			return
		}

		_, err = f.Write(buf)
		if err != nil {
			return
		}
	}

	return
}

// AppendPointer - Appends a record pointer to the given bucket and increments its
// occupancy. It returns ok false, without touching the bucket, if the bucket is full.
func AppendPointer(f *os.File, bucketNo, capacity, pointer int64) (ok bool, err error) {
	bucketAddress := BucketSize(capacity) * bucketNo

	occupancy, err := ReadOccupancy(f, bucketNo, capacity)
	if err != nil {
		return
	}

	if occupancy == capacity {
		return
	}

	_, err = f.Seek(bucketAddress+conf.OccupancyBytes+occupancy*conf.PointerBytes, io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, conf.PointerBytes)
	binary.LittleEndian.PutUint64(buf, uint64(pointer))
	_, err = f.Write(buf)
	if err != nil {
		return
	}

	_, err = f.Seek(bucketAddress, io.SeekStart)
	if err != nil {
		return
	}

	buf = make([]byte, conf.OccupancyBytes)
	binary.LittleEndian.PutUint32(buf, uint32(occupancy+1))
	_, err = f.Write(buf)
	if err != nil {
		return
	}

	ok = true

	return
}

// GetBucket - Returns the occupancy and the occupied pointer slots of a bucket
func GetBucket(f *os.File, bucketNo, capacity int64) (occupancy int64, pointers []int64, err error) {
	_, err = f.Seek(BucketSize(capacity)*bucketNo, io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, BucketSize(capacity))
	_, err = io.ReadFull(f, buf)
	if err != nil {
		return
	}

	occupancy, pointers, err = bytesToBucket(buf, capacity)

	return
}

// ReadOccupancy - Reads the occupancy counter of a bucket
func ReadOccupancy(f *os.File, bucketNo, capacity int64) (occupancy int64, err error) {
	_, err = f.Seek(BucketSize(capacity)*bucketNo, io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, conf.OccupancyBytes)
	_, err = io.ReadFull(f, buf)
	if err != nil {
		return
	}

	occupancy = int64(int32(binary.LittleEndian.Uint32(buf)))

	return
}

// WriteDepth - Persists the index depth as a 4 byte integer immediately after the
// last bucket's region
func WriteDepth(f *os.File, numBuckets, capacity int64, depth int32) (err error) {
	_, err = f.Seek(numBuckets*BucketSize(capacity), io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, conf.DepthBytes)
	binary.LittleEndian.PutUint32(buf, uint32(depth))
	_, err = f.Write(buf)

	return
}

// ReadDepth - Reads the index depth stored as the trailing 4 byte integer of the index file
func ReadDepth(f *os.File, fileSize int64) (depth int32, err error) {
	_, err = f.Seek(fileSize-conf.DepthBytes, io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, conf.DepthBytes)
	_, err = io.ReadFull(f, buf)
	if err != nil {
		return
	}

	depth = int32(binary.LittleEndian.Uint32(buf))

	return
}
