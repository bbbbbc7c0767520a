//go:build unit

package record

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func testWidths() FieldWidths {
	return FieldWidths{
		SeqID:     4,
		Entry:     6,
		Series:    4,
		Realm:     10,
		Continent: 13,
		Biome:     22,
		Country:   8,
		Cave:      16,
		Species:   25,
	}
}

func TestFieldWidths_RecordSize(t *testing.T) {
	t.Run("sums text widths plus the two coordinate fields", func(t *testing.T) {
		// Prepare
		widths := testWidths()

		// Execute
		size := widths.RecordSize()

		// Check
		assert.Equal(t, int64(4+6+4+10+13+22+8+16+25+16), size, "correct record size")
	})
}

func TestWidthsFromList(t *testing.T) {
	t.Run("round trips through List", func(t *testing.T) {
		// Prepare
		widths := testWidths()

		// Execute
		result, err := WidthsFromList(widths.List())

		// Check
		assert.NoError(t, err, "converts list to widths")
		assert.Equal(t, widths, result, "width table preserved")
	})

	t.Run("error when list has wrong length", func(t *testing.T) {
		// Execute
		_, err := WidthsFromList([]int{1, 2, 3})

		// Check
		assert.Error(t, err, "error from wrong length")
	})
}

func TestFieldWidths_Observe(t *testing.T) {
	t.Run("broadens widths to cover a record", func(t *testing.T) {
		// Prepare
		r := Record{SeqID: "12345", Entry: "42", Cave: "Gruta do Lago Azul"}

		// Execute
		widths := FieldWidths{}.Observe(r)

		// Check
		assert.Equal(t, 5, widths.SeqID, "covers seq ID")
		assert.Equal(t, 2, widths.Entry, "covers entry")
		assert.Equal(t, 18, widths.Cave, "covers cave")
	})

	t.Run("blank fields count as at least the null token width", func(t *testing.T) {
		// Prepare
		r := Record{Entry: "42"}

		// Execute
		widths := FieldWidths{}.Observe(r)

		// Check
		assert.Equal(t, len(NullToken), widths.Species, "blank field reserves null token width")
		assert.Equal(t, len(NullToken), widths.SeqID, "blank field reserves null token width")
	})

	t.Run("never narrows an already wider width", func(t *testing.T) {
		// Prepare
		widths := FieldWidths{Entry: 10}

		// Execute
		result := widths.Observe(Record{Entry: "42"})

		// Check
		assert.Equal(t, 10, result.Entry, "width kept")
	})
}

func TestEncode(t *testing.T) {
	t.Run("encodes to the fixed record size", func(t *testing.T) {
		// Prepare
		widths := testWidths()
		r := Record{SeqID: "17", Entry: "715", Latitude: -20.45, Longitude: 134.2}

		// Execute
		buf := Encode(r, widths)

		// Check
		assert.Equal(t, widths.RecordSize(), int64(len(buf)), "correct encoded size")
	})

	t.Run("right pads text fields with spaces", func(t *testing.T) {
		// Prepare
		widths := testWidths()
		r := Record{SeqID: "17", Entry: "715"}

		// Execute
		buf := Encode(r, widths)

		// Check
		assert.Equal(t, "17  ", string(buf[:4]), "seq ID padded to width")
		assert.Equal(t, "715   ", string(buf[4:10]), "entry padded to width")
	})

	t.Run("substitutes the null token for blank fields", func(t *testing.T) {
		// Prepare
		widths := testWidths()
		r := Record{Entry: "715", Series: "   "}

		// Execute
		buf := Encode(r, widths)

		// Check
		assert.Equal(t, "null", string(buf[10:14]), "blank series encoded as null token")
		assert.Equal(t, "null", string(buf[:4]), "empty seq ID encoded as null token")
	})

	t.Run("truncates overlong fields deterministically", func(t *testing.T) {
		// Prepare
		widths := testWidths()
		r := Record{SeqID: "123456789", Entry: "715"}

		// Execute
		first := Encode(r, widths)
		second := Encode(r, widths)

		// Check
		assert.Equal(t, "1234", string(first[:4]), "seq ID truncated to width")
		assert.Equal(t, first, second, "truncation is deterministic")
	})
}

func TestDecode(t *testing.T) {
	t.Run("is the structural inverse of Encode", func(t *testing.T) {
		// Prepare
		widths := testWidths()
		r := Record{
			SeqID:     "17",
			Entry:     "715",
			Series:    "S1",
			Realm:     "Neotropic",
			Continent: "South America",
			Biome:     "Tropical moist forest",
			Country:   "Brazil",
			Cave:      "Gruta Azul",
			Latitude:  -20.45,
			Longitude: -56.58,
			Species:   "Desmodus rotundus",
		}

		// Execute
		result, err := Decode(Encode(r, widths), widths)

		// Check
		assert.NoError(t, err, "decodes record")
		assert.Equal(t, r, result, "every field within width reproduced exactly")
	})

	t.Run("preserves the null token for blank fields", func(t *testing.T) {
		// Prepare
		widths := testWidths()
		r := Record{Entry: "715"}

		// Execute
		result, err := Decode(Encode(r, widths), widths)

		// Check
		assert.NoError(t, err, "decodes record")
		assert.Equal(t, NullToken, result.Series, "blank field decodes as the null token")
	})

	t.Run("error when buf is too short", func(t *testing.T) {
		// Prepare
		widths := testWidths()

		// Execute
		_, err := Decode(make([]byte, 10), widths)

		// Check
		assert.Error(t, err, "error from too short buf")
	})
}

func TestRecord_Key(t *testing.T) {
	t.Run("returns the trimmed entry field", func(t *testing.T) {
		// Prepare
		r := Record{Entry: "  715 "}

		// Execute
		key := r.Key()

		// Check
		assert.Equal(t, "715", key, "key trimmed on both sides")
	})
}
