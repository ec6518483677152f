package demographics

import (
	"fmt"
	"strings"
)

// MalformedNameError reports a patient name that does not split into the
// expected LAST^FIRST or LAST^FIRST^MIDDLE structure.
type MalformedNameError struct {
	Name string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("patient name %q is not in LAST^FIRST or LAST^FIRST^MIDDLE form", e.Name)
}

// MalformedIDError reports a patient ID whose numeric suffix could not be
// parsed.
type MalformedIDError struct {
	PatientID string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("patient ID %q has no numeric suffix after its 3-character prefix", e.PatientID)
}

// MalformedRowError reports an input row with the wrong number of fields.
type MalformedRowError struct {
	Fields []string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %q has %d field(s), want %d",
		strings.Join(e.Fields, ","), len(e.Fields), FieldCount)
}
