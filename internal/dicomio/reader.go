// Package dicomio reads patient demographics out of DICOM files. DICOM
// person names carry the same LAST^FIRST^MIDDLE structure as the CSV name
// column, so records from either source flow through the same pipeline.
package dicomio

import (
	"fmt"
	"os"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"patient-grouper/internal/demographics"
)

// ReadRecord reads one DICOM file (pixel data skipped) and extracts its
// demographic record from the patient module tags.
func ReadRecord(path string) (demographics.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return demographics.Record{}, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return demographics.Record{}, fmt.Errorf("could not stat file: %w", err)
	}

	ds, err := dicom.Parse(file, info.Size(), nil, dicom.SkipPixelData())
	if err != nil {
		return demographics.Record{}, fmt.Errorf("could not parse DICOM: %w", err)
	}

	return demographics.Record{
		PatientID:   tagString(ds, tag.PatientID),
		PatientName: tagString(ds, tag.PatientName),
		Sex:         tagString(ds, tag.PatientSex),
		DateOfBirth: tagString(ds, tag.PatientBirthDate),
	}, nil
}

// ReadFolder reads the demographic record of every DICOM file under folder.
// Records come back in sorted file-path order, so a folder has a stable
// notion of input order. The first unreadable file fails the whole read.
func ReadFolder(folder string, recursive bool) ([]demographics.Record, error) {
	files, err := FindDicomFiles(folder, recursive)
	if err != nil {
		return nil, fmt.Errorf("could not find DICOM files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no DICOM files found in %s", folder)
	}

	records := make([]demographics.Record, 0, len(files))
	for _, path := range files {
		rec, err := ReadRecord(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// tagString returns a tag's first string value, or "" if absent.
func tagString(ds dicom.Dataset, t tag.Tag) string {
	elem, err := ds.FindElementByTag(t)
	if err != nil || elem.Value == nil {
		return ""
	}

	switch v := elem.Value.GetValue().(type) {
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case string:
		return v
	}

	return ""
}
