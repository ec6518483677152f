// Package report renders a group table as an indexed, line-oriented report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"patient-grouper/internal/demographics"
)

// Marker is the line printed between the insertion-order report and the
// PID-descending report.
const Marker = "Different version, sorted by PID number"

// Write renders the table's groups in their current order: a zero-based
// index line per group, then one comma-joined line per record.
func Write(w io.Writer, t *demographics.Table) error {
	bw := bufio.NewWriter(w)

	for i, key := range t.Keys() {
		fmt.Fprintf(bw, "%d:\n", i)
		for _, rec := range t.Records(key) {
			fmt.Fprintln(bw, strings.Join(rec.Fields(), ","))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}

// WriteBoth renders the insertion-order report, the marker line, and the
// PID-descending report. The table is re-sorted in place between the two.
func WriteBoth(w io.Writer, t *demographics.Table) error {
	if err := Write(w, t); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Marker); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	if err := demographics.SortByPIDDesc(t); err != nil {
		return err
	}
	return Write(w, t)
}
