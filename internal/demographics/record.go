package demographics

import "strconv"

// FieldCount is the number of fields in a demographic record.
const FieldCount = 4

// pidPrefixLen is the length of the "PID" prefix on patient IDs. The prefix
// is sliced off without comparing it to the literal, so upstream systems
// that use a different three-character prefix still sort correctly.
const pidPrefixLen = 3

// Record is one patient demographic row. Fields are kept as read; records
// are never mutated after parsing.
type Record struct {
	PatientID   string
	PatientName string
	Sex         string
	DateOfBirth string
}

// NewRecord builds a Record from an ordered field list.
func NewRecord(fields []string) (Record, error) {
	if len(fields) != FieldCount {
		return Record{}, &MalformedRowError{Fields: fields}
	}
	return Record{
		PatientID:   fields[0],
		PatientName: fields[1],
		Sex:         fields[2],
		DateOfBirth: fields[3],
	}, nil
}

// Fields returns the record's fields in input order.
func (r Record) Fields() []string {
	return []string{r.PatientID, r.PatientName, r.Sex, r.DateOfBirth}
}

// PIDNumber extracts the numeric suffix of a patient ID of the form PID###.
func PIDNumber(id string) (uint64, error) {
	if len(id) < pidPrefixLen {
		return 0, &MalformedIDError{PatientID: id}
	}
	n, err := strconv.ParseUint(id[pidPrefixLen:], 10, 64)
	if err != nil {
		return 0, &MalformedIDError{PatientID: id}
	}
	return n, nil
}
