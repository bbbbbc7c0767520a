//go:build unit

package file

import (
	"github.com/gostonefire/cavehash/internal/conf"
	"github.com/gostonefire/cavehash/record"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func TestBucketRange(t *testing.T) {
	t.Run("initializes and reads a bucket range", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "test.idx")
		f, err := CreateNewFile(fileName)
		assert.NoError(t, err, "creates index file")
		defer CloseFile(f)

		// Execute
		err = InitBucketRange(f, 0, 4, 2)

		// Check
		assert.NoError(t, err, "initializes bucket range")

		for i := int64(0); i < 4; i++ {
			occupancy, pointers, err := GetBucket(f, i, 2)
			assert.NoError(t, err, "reads bucket")
			assert.Equal(t, int64(0), occupancy, "occupancy is zero")
			assert.Empty(t, pointers, "no occupied pointers")
		}
	})

	t.Run("appends pointers until the bucket is full", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "test.idx")
		f, err := CreateNewFile(fileName)
		assert.NoError(t, err, "creates index file")
		defer CloseFile(f)

		err = InitBucketRange(f, 0, 2, 2)
		assert.NoError(t, err, "initializes bucket range")

		// Execute
		ok1, err1 := AppendPointer(f, 1, 2, 100)
		ok2, err2 := AppendPointer(f, 1, 2, 200)
		ok3, err3 := AppendPointer(f, 1, 2, 300)

		// Check
		assert.NoError(t, err1, "appends first pointer")
		assert.NoError(t, err2, "appends second pointer")
		assert.NoError(t, err3, "no error on full bucket")
		assert.True(t, ok1, "first pointer fits")
		assert.True(t, ok2, "second pointer fits")
		assert.False(t, ok3, "third pointer signals full bucket")

		occupancy, pointers, err := GetBucket(f, 1, 2)
		assert.NoError(t, err, "reads bucket")
		assert.Equal(t, int64(2), occupancy, "occupancy at capacity")
		assert.Equal(t, []int64{100, 200}, pointers, "correct pointers in insertion order")
	})

	t.Run("clears occupancy but keeps pointer slots", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "test.idx")
		f, err := CreateNewFile(fileName)
		assert.NoError(t, err, "creates index file")
		defer CloseFile(f)

		err = InitBucketRange(f, 0, 2, 2)
		assert.NoError(t, err, "initializes bucket range")
		_, err = AppendPointer(f, 0, 2, 100)
		assert.NoError(t, err, "appends pointer")

		// Execute
		err = ClearOccupancyRange(f, 0, 2, 2)

		// Check
		assert.NoError(t, err, "clears occupancy range")

		occupancy, err := ReadOccupancy(f, 0, 2)
		assert.NoError(t, err, "reads occupancy")
		assert.Equal(t, int64(0), occupancy, "occupancy cleared")
	})
}

func TestDepth(t *testing.T) {
	t.Run("writes and reads back the trailing depth", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "test.idx")
		f, err := CreateNewFile(fileName)
		assert.NoError(t, err, "creates index file")
		defer CloseFile(f)

		err = InitBucketRange(f, 0, 8, 2)
		assert.NoError(t, err, "initializes bucket range")

		// Execute
		err = WriteDepth(f, 8, 2, 2)

		// Check
		assert.NoError(t, err, "writes depth")

		stat, err := os.Stat(fileName)
		assert.NoError(t, err, "stats index file")
		assert.Equal(t, 8*BucketSize(2)+conf.DepthBytes, stat.Size(), "depth trails the bucket region")

		depth, err := ReadDepth(f, stat.Size())
		assert.NoError(t, err, "reads depth")
		assert.Equal(t, int32(2), depth, "correct depth")
	})
}

func TestWidths(t *testing.T) {
	t.Run("writes and reads back the store footer", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "test.bin")
		f, err := CreateNewFile(fileName)
		assert.NoError(t, err, "creates store file")
		defer CloseFile(f)

		widths := record.FieldWidths{SeqID: 4, Entry: 6, Series: 2, Realm: 10, Continent: 13, Biome: 22, Country: 8, Cave: 16, Species: 25}

		// Execute
		err = WriteWidths(f, widths)

		// Check
		assert.NoError(t, err, "writes footer")

		stat, err := os.Stat(fileName)
		assert.NoError(t, err, "stats store file")
		assert.Equal(t, FooterSize(), stat.Size(), "footer size on empty store")

		result, err := ReadWidths(f, stat.Size())
		assert.NoError(t, err, "reads footer")
		assert.Equal(t, widths, result, "width table preserved")
	})
}

func TestRemoveFile(t *testing.T) {
	t.Run("removes an existing file", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "test.bin")
		f, err := CreateNewFile(fileName)
		assert.NoError(t, err, "creates file")
		CloseFile(f)

		// Execute
		err = RemoveFile(fileName)

		// Check
		assert.NoError(t, err, "removes file")
		_, err = os.Stat(fileName)
		assert.True(t, os.IsNotExist(err), "file removed")
	})

	t.Run("no error when file does not exist", func(t *testing.T) {
		// Execute
		err := RemoveFile(filepath.Join(t.TempDir(), "missing.bin"))

		// Check
		assert.NoError(t, err, "no error on missing file")
	})
}
