package demographics

import (
	"errors"
	"testing"
)

func TestPIDNumber(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected uint64
	}{
		{"single digit", "PID1", 1},
		{"multiple digits", "PID431", 431},
		{"leading zeros", "PID007", 7},
		{"zero", "PID0", 0},
		// The prefix is sliced, not validated, so any 3-character prefix
		// with a numeric remainder parses.
		{"other prefix", "XYZ1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := PIDNumber(tt.id)
			if err != nil {
				t.Fatalf("PIDNumber(%q) returned error: %v", tt.id, err)
			}
			if n != tt.expected {
				t.Errorf("PIDNumber(%q) = %d, want %d", tt.id, n, tt.expected)
			}
		})
	}
}

func TestPIDNumberMalformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"shorter than prefix", "PI"},
		{"prefix only", "PID"},
		{"non-digit suffix", "PIDx"},
		{"mixed suffix", "PID12a"},
		{"negative suffix", "PID-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PIDNumber(tt.id)
			if err == nil {
				t.Fatalf("PIDNumber(%q) = nil error, want malformed ID error", tt.id)
			}

			var idErr *MalformedIDError
			if !errors.As(err, &idErr) {
				t.Fatalf("PIDNumber(%q) error = %T, want *MalformedIDError", tt.id, err)
			}
			if idErr.PatientID != tt.id {
				t.Errorf("error names %q, want %q", idErr.PatientID, tt.id)
			}
		})
	}
}

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord([]string{"PID1", "POND^AMY", "F", "19890224"})
	if err != nil {
		t.Fatalf("NewRecord returned error: %v", err)
	}

	if rec.PatientID != "PID1" || rec.PatientName != "POND^AMY" ||
		rec.Sex != "F" || rec.DateOfBirth != "19890224" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestNewRecordWrongFieldCount(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"too few", []string{"PID1", "POND^AMY", "F"}},
		{"too many", []string{"PID1", "POND^AMY", "F", "19890224", "extra"}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.fields)
			var rowErr *MalformedRowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("NewRecord(%v) error = %v, want *MalformedRowError", tt.fields, err)
			}
		})
	}
}

func TestRecordFieldsRoundTrip(t *testing.T) {
	fields := []string{"PID2", "WILLIAMS^RORY", "M", "19881102"}
	rec, err := NewRecord(fields)
	if err != nil {
		t.Fatal(err)
	}

	got := rec.Fields()
	for i := range fields {
		if got[i] != fields[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], fields[i])
		}
	}
}
