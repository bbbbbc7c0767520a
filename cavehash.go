// Package cavehash implements fast point lookup by entry key over a large
// fixed-width record store, via an on-disk extendible hash index that is built
// once in a batch pass and queried afterward through random-access lookups.
//
// A store file holds records in ascending key order followed by a width table
// footer, see StoreWriter and StoreReader. An index file holds 2^(depth+1)
// fixed-size buckets of record offsets followed by a trailing depth integer,
// see IndexBuilder and IndexReader. Index growth is by global doubling and a
// full re-insertion pass rather than per-bucket splitting, so any overflow
// anywhere forces a rebuild at the next depth.
//
// All access is single-threaded, synchronous and positioned, there is no
// locking or caching layer. One build step, then any number of independent
// read-only query sessions.
package cavehash
