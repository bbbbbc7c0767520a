package hash

import (
	"github.com/cespare/xxhash/v2"
)

// BucketAlgorithm - The internally used bucket selection algorithm is implemented using
// xxhash.Sum64String to create a hash value over the key, truncated to 32 bits with the
// sign bit masked off, and then applying bucket = hash % numBuckets to get the bucket
// number. It is deterministic over the key alone, so builder and reader agree on bucket
// addresses at any depth.
type BucketAlgorithm struct{}

// NewBucketAlgorithm - Returns a pointer to a new BucketAlgorithm instance
func NewBucketAlgorithm() *BucketAlgorithm {
	return &BucketAlgorithm{}
}

// BucketNumber - Given key it generates a bucket number between 0 and numBuckets - 1 (inclusive)
func (B *BucketAlgorithm) BucketNumber(key string, numBuckets int64) int64 {
	h := int64(uint32(xxhash.Sum64String(key)) & 0x7fffffff)
	return h % numBuckets
}
