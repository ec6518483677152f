package demographics

import "fmt"

// Table is an ordered mapping from group key to the records that share it.
// Keys iterate in first-occurrence order; records within a group keep the
// order they were appended in.
type Table struct {
	keys   []string
	groups map[string][]Record
}

// Group clusters records by their name-derived key, preserving input order
// both across groups and within each group. The first malformed name aborts
// the whole grouping.
func Group(records []Record) (*Table, error) {
	t := &Table{groups: make(map[string][]Record)}

	for i, rec := range records {
		key, err := GroupKey(rec.PatientName)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i+1, rec.PatientID, err)
		}
		if _, seen := t.groups[key]; !seen {
			t.keys = append(t.keys, key)
		}
		t.groups[key] = append(t.groups[key], rec)
	}

	return t, nil
}

// Len returns the number of groups.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the group keys in first-occurrence order.
func (t *Table) Keys() []string {
	return t.keys
}

// Records returns the records for a key in their current order.
func (t *Table) Records(key string) []Record {
	return t.groups[key]
}
