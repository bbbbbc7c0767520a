// Package record implements the fixed-width binary codec for cave observation
// records together with the width table that defines the layout. Text fields are
// right padded with spaces to their declared width and silently truncated when
// longer, which is lossy by design. Coordinate fields are fixed 8 byte floating
// point values in little endian byte order. The codec has no notion of key
// semantics.
package record

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Encode - Encodes a record into its fixed-width binary form under the given widths.
// A blank or empty text field is replaced by the literal NullToken padded to width.
func Encode(r Record, widths FieldWidths) (buf []byte) {
	buf = make([]byte, 0, widths.RecordSize())

	buf = append(buf, padField(r.SeqID, widths.SeqID)...)
	buf = append(buf, padField(r.Entry, widths.Entry)...)
	buf = append(buf, padField(r.Series, widths.Series)...)
	buf = append(buf, padField(r.Realm, widths.Realm)...)
	buf = append(buf, padField(r.Continent, widths.Continent)...)
	buf = append(buf, padField(r.Biome, widths.Biome)...)
	buf = append(buf, padField(r.Country, widths.Country)...)
	buf = append(buf, padField(r.Cave, widths.Cave)...)

	coords := make([]byte, coordinateBytes)
	binary.LittleEndian.PutUint64(coords, math.Float64bits(r.Latitude))
	binary.LittleEndian.PutUint64(coords[8:], math.Float64bits(r.Longitude))
	buf = append(buf, coords...)

	buf = append(buf, padField(r.Species, widths.Species)...)

	return
}

// Decode - Decodes one fixed-width binary record under the given widths. It is the
// structural inverse of Encode, with the space padding of text fields trimmed off.
func Decode(buf []byte, widths FieldWidths) (r Record, err error) {
	if int64(len(buf)) < widths.RecordSize() {
		err = fmt.Errorf("length of record data (%d) less than record size (%d)", len(buf), widths.RecordSize())
		return
	}

	pos := 0
	next := func(width int) string {
		field := strings.TrimRight(string(buf[pos:pos+width]), " ")
		pos += width
		return field
	}

	r.SeqID = next(widths.SeqID)
	r.Entry = next(widths.Entry)
	r.Series = next(widths.Series)
	r.Realm = next(widths.Realm)
	r.Continent = next(widths.Continent)
	r.Biome = next(widths.Biome)
	r.Country = next(widths.Country)
	r.Cave = next(widths.Cave)

	r.Latitude = math.Float64frombits(binary.LittleEndian.Uint64(buf[pos:]))
	r.Longitude = math.Float64frombits(binary.LittleEndian.Uint64(buf[pos+8:]))
	pos += int(coordinateBytes)

	r.Species = next(widths.Species)

	return
}

// padField - Returns the fixed-width form of a text field. It truncates when the
// field is longer than width, pads with spaces when shorter, and substitutes the
// NullToken for blank fields.
func padField(field string, width int) string {
	if width <= 0 {
		return ""
	}

	if strings.TrimSpace(field) == "" {
		field = NullToken
	}

	if len(field) > width {
		field = field[:width]
	}

	return field + strings.Repeat(" ", width-len(field))
}
