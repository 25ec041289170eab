package ingest

import (
	"fmt"
	"strings"
)

// SourceType identifies which audit export a file is supposed to be
type SourceType string

const (
	SourceSQL    SourceType = "sql"
	SourceAD     SourceType = "ad"
	SourceBackup SourceType = "backup"
)

// fingerprints maps each source type to the minimal column set its
// export always carries. The check is advisory: it catches a file
// uploaded into the wrong slot, it is not a schema validator.
var fingerprints = map[SourceType][]string{
	SourceSQL:    {"priority", "finding"},
	SourceAD:     {"groupname", "samaccountname"},
	SourceBackup: {"message"},
}

// ValidateSource checks a parsed table against the expected source
// type's fingerprint. On mismatch the error names the type the file
// actually resembles, if any.
func ValidateSource(table *Table, expected SourceType) error {
	required, ok := fingerprints[expected]
	if !ok {
		return fmt.Errorf("unknown source type: %s", expected)
	}

	if matchesFingerprint(table, required) {
		return nil
	}

	if actual, found := DetectSource(table); found {
		return fmt.Errorf("file does not look like a %s export: missing column(s) %s (fingerprints as a %s export instead)",
			expected, strings.Join(missingColumns(table, required), ", "), actual)
	}
	return fmt.Errorf("file does not look like a %s export: missing column(s) %s",
		expected, strings.Join(missingColumns(table, required), ", "))
}

// DetectSource reports which source type a table fingerprints as, in a
// fixed check order so overlapping headers resolve deterministically.
func DetectSource(table *Table) (SourceType, bool) {
	for _, st := range []SourceType{SourceSQL, SourceAD, SourceBackup} {
		if matchesFingerprint(table, fingerprints[st]) {
			return st, true
		}
	}
	return "", false
}

func matchesFingerprint(table *Table, required []string) bool {
	for _, col := range required {
		if !table.HasColumn(col) {
			return false
		}
	}
	return true
}

func missingColumns(table *Table, required []string) []string {
	var missing []string
	for _, col := range required {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}
