package cli

import (
	"fmt"
	"io"
	"os"

	"patient-grouper/internal/csvio"
	"patient-grouper/internal/demographics"
	"patient-grouper/internal/dicomio"
	"patient-grouper/internal/report"
)

// Options holds CLI configuration options
type Options struct {
	InputPath  string // CSV file, or DICOM folder in DICOM mode
	DicomMode  bool
	Recursive  bool
	OutputFile string

	// Out receives the reports when no output file is set; defaults to
	// stdout. Err receives diagnostics; defaults to stderr.
	Out io.Writer
	Err io.Writer
}

// Run reads the input records, groups them by normalized patient name, and
// writes the two reports: first in insertion order, then sorted by
// descending PID number.
func Run(opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	if opts.InputPath == "" {
		return fmt.Errorf("input path is required")
	}

	info, err := os.Stat(opts.InputPath)
	if err != nil {
		return fmt.Errorf("input path does not exist: %s", opts.InputPath)
	}

	var records []demographics.Record
	if opts.DicomMode || info.IsDir() {
		if !info.IsDir() {
			return fmt.Errorf("input path is not a directory: %s", opts.InputPath)
		}
		records, err = dicomio.ReadFolder(opts.InputPath, opts.Recursive)
	} else {
		records, err = csvio.ReadFile(opts.InputPath)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Err, "Read %d record(s) from %s\n", len(records), opts.InputPath)

	table, err := demographics.Group(records)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.Err, "Found %d patient group(s)\n", table.Len())

	out := opts.Out
	if opts.OutputFile != "" {
		file, err := os.Create(opts.OutputFile)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := report.WriteBoth(out, table); err != nil {
		return err
	}

	if opts.OutputFile != "" {
		fmt.Fprintf(opts.Err, "Reports written to %s\n", opts.OutputFile)
	}

	return nil
}

// PrintUsage prints CLI usage information
func PrintUsage() {
	fmt.Println(`Patient Demographics Grouper

Groups patient demographic records (PatientID, PatientName, Sex,
DateOfBirth) by normalized last^first name and prints the groups twice:
once in first-seen order, once with each group sorted by descending PID
number.

USAGE:
  grouper                       Launch GUI (default)
  grouper <file.csv>            Group records from a CSV file
  grouper -i <path> [flags]     Explicit input path (CSV file or DICOM folder)

INPUT:
  CSV files have one record per line and no header:
    PID1,POND^AMY,F,19890224
  The name column uses ^ as its sub-field separator (last^first^middle).
  A folder input is scanned for DICOM files and the same demographics are
  read from the PatientID, PatientName, PatientSex and PatientBirthDate tags.

FLAGS:
  -i, --input <path>      Input CSV file or DICOM folder
  -d, --dicom             Treat the input path as a DICOM folder
  -r, --recursive         Search subdirectories for DICOM files (default: true)
  -o, --output <file>     Write the reports to a file instead of stdout
  -h, --help              Show this help message

OUTPUT:
  Two reports separated by the line
    Different version, sorted by PID number
  Each report lists every group as a zero-based index line followed by the
  group's records, fields joined by commas.`)
}
