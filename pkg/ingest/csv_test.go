package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVBasic(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("Priority,Finding,DatabaseName\n10,Backups not performed,HR\n20,Corruption check,Sales\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Priority", "Finding", "DatabaseName"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "10", table.Rows[0].Get("Priority"))
	assert.Equal(t, "Sales", table.Rows[1].Get("DatabaseName"))
}

func TestParseCSVEmptyInput(t *testing.T) {
	table, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestParseCSVShortRowPadsEmpty(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("A,B,C\n1,2\n"))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2", table.Rows[0].Get("B"))
	assert.Equal(t, "", table.Rows[0].Get("C"))
}

func TestParseCSVLongRowDropsExtras(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("A,B\n1,2,3,4\n"))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "1", table.Rows[0].Get("A"))
	assert.Equal(t, "2", table.Rows[0].Get("B"))
}

func TestParseCSVHeaderWhitespaceTrimmed(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("Priority , Finding\n10,x\n"))
	require.NoError(t, err)
	assert.True(t, table.HasColumn("priority"))
	assert.True(t, table.HasColumn("FINDING"))
}

func TestRecordGetCaseInsensitive(t *testing.T) {
	rec := Record{"SamAccountName": "svc_backup"}
	assert.Equal(t, "svc_backup", rec.Get("samaccountname"))
	assert.Equal(t, "svc_backup", rec.Get("SAMACCOUNTNAME"))
	assert.Equal(t, "", rec.Get("missing"))
}

func TestRecordGetAny(t *testing.T) {
	rec := Record{"TimeGenerated": "2025-01-01T00:00:00Z"}
	assert.Equal(t, "2025-01-01T00:00:00Z", rec.GetAny("TimeCreated", "TimeGenerated"))
	assert.Equal(t, "", rec.GetAny("Absent", "AlsoAbsent"))
}

func TestParseCSVQuotedFields(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("Finding,Details\n\"Backups, not performed\",detail\n"))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Backups, not performed", table.Rows[0].Get("Finding"))
}
