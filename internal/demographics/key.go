package demographics

import "strings"

// nameSeparator is the DICOM person-name component separator.
const nameSeparator = "^"

// GroupKey derives the grouping key for a patient name: the lowercased
// "last^first" portion, with any middle-name component discarded.
// Names that do not split into 2 or 3 components are malformed.
func GroupKey(name string) (string, error) {
	lowered := strings.ToLower(name)
	parts := strings.Split(lowered, nameSeparator)

	switch len(parts) {
	case 2:
		return lowered, nil
	case 3:
		return parts[0] + nameSeparator + parts[1], nil
	default:
		return "", &MalformedNameError{Name: name}
	}
}
