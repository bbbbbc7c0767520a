package file

import (
	"encoding/binary"
	"fmt"

	"github.com/gostonefire/cavehash/internal/conf"
	"github.com/gostonefire/cavehash/record"
)

// emptyBucketBytes - Returns the raw image of an initialized bucket, i.e. occupancy
// zero and every pointer slot holding the nil pointer sentinel
func emptyBucketBytes(capacity int64) (buf []byte) {
	buf = make([]byte, BucketSize(capacity))

	sentinel := conf.NilPointer
	for i := int64(0); i < capacity; i++ {
		pos := conf.OccupancyBytes + i*conf.PointerBytes
		binary.LittleEndian.PutUint64(buf[pos:], uint64(sentinel))
	}

	return
}

// bytesToBucket - Converts bucket raw data to occupancy and the occupied pointer slots
func bytesToBucket(buf []byte, capacity int64) (occupancy int64, pointers []int64, err error) {
	actual := int64(len(buf))
	expected := BucketSize(capacity)

	if expected > actual {
		err = fmt.Errorf("length of data in buf (%d) less than bucket size (%d)", actual, expected)
		return
	}

	occupancy = int64(int32(binary.LittleEndian.Uint32(buf)))
	if occupancy < 0 || occupancy > capacity {
		err = fmt.Errorf("bucket occupancy (%d) outside capacity (%d), index is corrupt", occupancy, capacity)
		return
	}

	pointers = make([]int64, occupancy)
	for i := int64(0); i < occupancy; i++ {
		pos := conf.OccupancyBytes + i*conf.PointerBytes
		pointers[i] = int64(binary.LittleEndian.Uint64(buf[pos:]))
	}

	return
}

// widthsToBytes - Converts a width table to its store footer form, a fixed sequence
// of 4 byte integers in declared field order
func widthsToBytes(widths record.FieldWidths) (buf []byte) {
	buf = make([]byte, FooterSize())

	for i, w := range widths.List() {
		binary.LittleEndian.PutUint32(buf[int64(i)*conf.WidthBytes:], uint32(w))
	}

	return
}

// bytesToWidths - Converts store footer raw data to a width table
func bytesToWidths(buf []byte) (widths record.FieldWidths, err error) {
	actual := int64(len(buf))
	expected := FooterSize()

	if expected > actual {
		err = fmt.Errorf("length of data in buf (%d) less than footer size (%d)", actual, expected)
		return
	}

	list := make([]int, record.NumTextFields)
	for i := range list {
		list[i] = int(int32(binary.LittleEndian.Uint32(buf[int64(i)*conf.WidthBytes:])))
	}

	widths, err = record.WidthsFromList(list)

	return
}
