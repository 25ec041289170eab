package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/auditfuse/pkg/engine"
	"github.com/user/auditfuse/pkg/ingest"
)

func sqlRecord(priority, finding, db string) ingest.Record {
	return ingest.Record{
		"Priority":     priority,
		"Finding":      finding,
		"Details":      "",
		"DatabaseName": db,
	}
}

func TestClassifySQLEmptyInput(t *testing.T) {
	v := ClassifySQL(nil)
	assert.Equal(t, engine.SeverityUnknown, v.Risk)
	assert.Empty(t, v.Findings)

	v = ClassifySQL([]ingest.Record{})
	assert.Equal(t, engine.SeverityUnknown, v.Risk)
}

func TestClassifySQLHighPriorityIgnored(t *testing.T) {
	v := ClassifySQL([]ingest.Record{
		sqlRecord("51", "Backups not performed", "HR"),
		sqlRecord("999", "Corruption check overdue", "Sales"),
	})
	assert.Equal(t, engine.SeverityLow, v.Risk)
	assert.Empty(t, v.Findings)
}

func TestClassifySQLUnparseablePriorityDeprioritized(t *testing.T) {
	v := ClassifySQL([]ingest.Record{
		sqlRecord("N/A", "Backups not performed", "HR"),
		sqlRecord("", "Backups not performed", "HR"),
	})
	assert.Equal(t, engine.SeverityLow, v.Risk)
	assert.Empty(t, v.Findings)
}

func TestClassifySQLNoBackupsIsCritical(t *testing.T) {
	v := ClassifySQL([]ingest.Record{
		sqlRecord("10", "Backups not performed", "HR"),
	})
	assert.Equal(t, engine.SeverityCritical, v.Risk)
	require.Len(t, v.Findings, 1)
	assert.Equal(t, "No Backups: HR", v.Findings[0].Title)
	assert.Equal(t, engine.SeverityCritical, v.Findings[0].Severity)
}

func TestClassifySQLCaseInsensitiveMatch(t *testing.T) {
	v := ClassifySQL([]ingest.Record{
		sqlRecord("10", "BACKUPS NOT PERFORMED on this server", "HR"),
	})
	assert.Equal(t, engine.SeverityCritical, v.Risk)
}

func TestClassifySQLCorruptionCheckIsHigh(t *testing.T) {
	v := ClassifySQL([]ingest.Record{
		sqlRecord("20", "Corruption check not run recently", "Sales"),
	})
	assert.Equal(t, engine.SeverityHigh, v.Risk)
	require.Len(t, v.Findings, 1)
	assert.Equal(t, "Corruption Check Overdue: Sales", v.Findings[0].Title)
}

func TestClassifySQLGenericIsMedium(t *testing.T) {
	v := ClassifySQL([]ingest.Record{
		sqlRecord("5", "Max memory not configured", "master"),
	})
	assert.Equal(t, engine.SeverityMedium, v.Risk)
	require.Len(t, v.Findings, 1)
	assert.Equal(t, "Config Issue: master", v.Findings[0].Title)
}

func TestClassifySQLRiskIsOrderIndependent(t *testing.T) {
	records := []ingest.Record{
		sqlRecord("5", "Max memory not configured", "master"),
		sqlRecord("10", "Backups not performed", "HR"),
		sqlRecord("20", "Corruption check not run recently", "Sales"),
	}
	reversed := []ingest.Record{records[2], records[1], records[0]}

	assert.Equal(t, ClassifySQL(records).Risk, ClassifySQL(reversed).Risk)
	assert.Equal(t, engine.SeverityCritical, ClassifySQL(records).Risk)
}

func TestClassifySQLMissingColumnsTolerated(t *testing.T) {
	v := ClassifySQL([]ingest.Record{{}})
	// No Priority column parses as the deprioritized default.
	assert.Equal(t, engine.SeverityLow, v.Risk)
	assert.Empty(t, v.Findings)
}

func TestClassifySQLFindingsKeepInsertionOrder(t *testing.T) {
	v := ClassifySQL([]ingest.Record{
		sqlRecord("5", "Max memory not configured", "master"),
		sqlRecord("10", "Backups not performed", "HR"),
	})
	require.Len(t, v.Findings, 2)
	assert.Equal(t, "Config Issue: master", v.Findings[0].Title)
	assert.Equal(t, "No Backups: HR", v.Findings[1].Title)
}
