package record

import (
	"fmt"
	"strings"
)

// NumTextFields - Number of text fields in a record, and hence the number of width
// integers in a store file footer.
const NumTextFields = 9

// NullToken - Literal token written in place of a blank or empty text field, to keep
// missing data visibly distinguishable in the fixed-width layout.
const NullToken = "null"

// coordinateBytes - Two 8 byte floating point coordinate fields per record
const coordinateBytes int64 = 16

// Record - An immutable tuple holding one cave observation. The Entry field is the
// designated key used for hashing and equality comparison during lookup.
type Record struct {
	SeqID     string
	Entry     string
	Series    string
	Realm     string
	Continent string
	Biome     string
	Country   string
	Cave      string
	Latitude  float64
	Longitude float64
	Species   string
}

// Key - Returns the designated key field trimmed from surrounding whitespace
func (R Record) Key() string {
	return strings.TrimSpace(R.Entry)
}

// FieldWidths - Per-field maximum byte widths defining the fixed-width record layout.
// The widths are computed once over the whole dataset by ingestion and are invariant
// for the life of a store/index pair. A FieldWidths value is passed explicitly into
// every component that encodes, decodes or sizes records.
type FieldWidths struct {
	SeqID     int
	Entry     int
	Series    int
	Realm     int
	Continent int
	Biome     int
	Country   int
	Cave      int
	Species   int
}

// RecordSize - Returns the size in bytes of one encoded record under these widths
func (W FieldWidths) RecordSize() int64 {
	var sum int64
	for _, w := range W.List() {
		sum += int64(w)
	}

	return sum + coordinateBytes
}

// List - Returns the widths in declared field order, which is also footer order
func (W FieldWidths) List() []int {
	return []int{W.SeqID, W.Entry, W.Series, W.Realm, W.Continent, W.Biome, W.Country, W.Cave, W.Species}
}

// WidthsFromList - Returns a FieldWidths struct given widths in declared field order
func WidthsFromList(list []int) (widths FieldWidths, err error) {
	if len(list) != NumTextFields {
		err = fmt.Errorf("expected %d field widths, got %d", NumTextFields, len(list))
		return
	}

	widths = FieldWidths{
		SeqID:     list[0],
		Entry:     list[1],
		Series:    list[2],
		Realm:     list[3],
		Continent: list[4],
		Biome:     list[5],
		Country:   list[6],
		Cave:      list[7],
		Species:   list[8],
	}

	return
}

// Observe - Returns widths broadened to also cover the text fields of the given
// record under the codec rules, i.e. a blank field counts as at least the width
// of the null token.
func (W FieldWidths) Observe(r Record) FieldWidths {
	return FieldWidths{
		SeqID:     maxWidth(W.SeqID, r.SeqID),
		Entry:     maxWidth(W.Entry, r.Entry),
		Series:    maxWidth(W.Series, r.Series),
		Realm:     maxWidth(W.Realm, r.Realm),
		Continent: maxWidth(W.Continent, r.Continent),
		Biome:     maxWidth(W.Biome, r.Biome),
		Country:   maxWidth(W.Country, r.Country),
		Cave:      maxWidth(W.Cave, r.Cave),
		Species:   maxWidth(W.Species, r.Species),
	}
}

// maxWidth - Returns the wider of the current width and the observed field width
func maxWidth(current int, field string) int {
	observed := len(field)
	if strings.TrimSpace(field) == "" && observed < len(NullToken) {
		observed = len(NullToken)
	}
	if observed > current {
		return observed
	}

	return current
}
