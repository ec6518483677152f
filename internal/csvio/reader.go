// Package csvio reads patient demographic records from comma-separated
// files: one record per line, no header, with the fields
// PatientID,PatientName,Sex,DateOfBirth.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"patient-grouper/internal/demographics"
)

// ReadFile reads all demographic records from a CSV file.
func ReadFile(path string) ([]demographics.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read reads demographic records from r until EOF. A row with the wrong
// field count fails the whole read.
func Read(r io.Reader) ([]demographics.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = demographics.FieldCount

	var records []demographics.Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("line %d: %w", parseErr.Line,
					&demographics.MalformedRowError{Fields: fields})
			}
			return nil, fmt.Errorf("could not parse CSV: %w", err)
		}

		rec, err := demographics.NewRecord(fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
