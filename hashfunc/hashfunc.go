package hashfunc

// HashAlgorithm - Interface that permits an implementation using the index to supply a custom bucket
// selection algorithm suited for its particular distribution of keys. The very same algorithm has to
// be used both when building an index and when querying it, otherwise lookups will address the
// wrong buckets.
type HashAlgorithm interface {
	// BucketNumber - Given key and the current number of buckets it returns a bucket number
	// in the range 0 to numBuckets - 1.
	// Any number returned outside that range will result in an error down stream.
	BucketNumber(key string, numBuckets int64) int64
}
