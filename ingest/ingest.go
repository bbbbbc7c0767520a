// Package ingest parses delimited cave observation datasets into records ready for
// a store build. It handles quoted fields with embedded delimiters, computes the
// width table over the whole dataset and delivers the records sorted in ascending
// key order, which is the contract the store writer trusts.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gostonefire/cavehash/record"
)

// numFields - Number of delimited fields per dataset row
const numFields = 11

// missingCoordinate - Placeholder value substituted for a blank coordinate field
const missingCoordinate float64 = -1000

// ParseFile - Parses a CSV dataset file into records and the width table covering them.
//   - fileName is the name of the CSV file to parse
//
// It returns:
//   - records sorted in ascending order by the entry key
//   - widths is the per-field maximum width table over the whole dataset
//   - err which is a standard Go type of error
func ParseFile(fileName string) (records []record.Record, widths record.FieldWidths, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("error while opening CSV file: %s", err)
		return
	}
	defer func() {
		_ = f.Close()
	}()

	records, widths, err = Parse(f)

	return
}

// Parse - Parses CSV dataset rows from a reader. The first row is consumed as a
// header. Every field is trimmed from surrounding whitespace, and blank coordinate
// fields are substituted with the missing coordinate placeholder.
func Parse(r io.Reader) (records []record.Record, widths record.FieldWidths, err error) {
	csvReader := csv.NewReader(r)

	// Consume the header
	_, err = csvReader.Read()
	if errors.Is(err, io.EOF) {
		err = nil
		return
	}
	if err != nil {
		err = fmt.Errorf("error while reading CSV header: %s", err)
		return
	}

	for {
		row, rErr := csvReader.Read()
		if errors.Is(rErr, io.EOF) {
			break
		}
		if rErr != nil {
			err = fmt.Errorf("error while reading CSV row: %s", rErr)
			return
		}

		rec, rErr := rowToRecord(row)
		if rErr != nil {
			err = rErr
			return
		}

		records = append(records, rec)
		widths = widths.Observe(rec)
	}

	sort.Slice(records, func(a, b int) bool { return records[a].Key() < records[b].Key() })

	return
}

// rowToRecord - Converts one delimited row to a record
func rowToRecord(row []string) (r record.Record, err error) {
	if len(row) != numFields {
		err = fmt.Errorf("expected %d fields in CSV row, got %d", numFields, len(row))
		return
	}

	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}

	latitude, err := parseCoordinate(row[8])
	if err != nil {
		err = fmt.Errorf("error while parsing latitude: %s", err)
		return
	}

	longitude, err := parseCoordinate(row[9])
	if err != nil {
		err = fmt.Errorf("error while parsing longitude: %s", err)
		return
	}

	r = record.Record{
		SeqID:     row[0],
		Entry:     row[1],
		Series:    row[2],
		Realm:     row[3],
		Continent: row[4],
		Biome:     row[5],
		Country:   row[6],
		Cave:      row[7],
		Latitude:  latitude,
		Longitude: longitude,
		Species:   row[10],
	}

	return
}

// parseCoordinate - Parses a coordinate field, substituting the placeholder when blank
func parseCoordinate(field string) (coordinate float64, err error) {
	if field == "" {
		coordinate = missingCoordinate
		return
	}

	coordinate, err = strconv.ParseFloat(field, 64)

	return
}
