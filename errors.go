package cavehash

import "fmt"

// NoRecordFound - Custom error to inform that no record matched a lookup key.
// A lookup that finds no matching key is a normal result, not a failure, and is
// distinguished by this type.
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// OffsetOutOfRange - Custom error to inform that a record offset points outside
// the record region of the store
type OffsetOutOfRange struct {
	Offset int64
}

// Error - Used to notify that a record offset is invalid
func (E OffsetOutOfRange) Error() string {
	return fmt.Sprintf("record offset (%d) outside the store record region", E.Offset)
}
