// Package ingest parses raw CSV exports into ordered record sequences
// and performs the advisory source-type fingerprint check.
package ingest

import "strings"

// Record is one parsed CSV data row keyed by column name. Column names
// keep their original casing but lookups compare case-insensitively,
// and a missing column reads as the empty string.
type Record map[string]string

// Get returns the value for a column, matching the name
// case-insensitively. Absent columns yield "".
func (r Record) Get(column string) string {
	if v, ok := r[column]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, column) {
			return v
		}
	}
	return ""
}

// GetAny returns the first non-empty value among the given columns,
// useful where sources disagree on a column name.
func (r Record) GetAny(columns ...string) string {
	for _, c := range columns {
		if v := r.Get(c); v != "" {
			return v
		}
	}
	return ""
}

// Table is an ordered sequence of records plus the header that keyed
// them, in original column order.
type Table struct {
	Columns []string
	Rows    []Record
}

// HasColumn reports whether the header contains the column,
// case-insensitively.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if strings.EqualFold(c, column) {
			return true
		}
	}
	return false
}
