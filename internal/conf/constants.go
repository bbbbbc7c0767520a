package conf

// OccupancyBytes - Number of bytes holding the occupancy counter at the start of each bucket
const OccupancyBytes int64 = 4

// PointerBytes - Number of bytes per record pointer slot in a bucket
const PointerBytes int64 = 8

// DepthBytes - Number of bytes holding the index depth trailing the bucket region
const DepthBytes int64 = 4

// WidthBytes - Number of bytes per field width integer in the store footer
const WidthBytes int64 = 4

// NilPointer - Sentinel value written in pointer slots that hold no record offset
const NilPointer int64 = -1

// DefaultBucketCapacity - Number of record pointer slots per bucket unless overridden in configuration
const DefaultBucketCapacity int64 = 30
