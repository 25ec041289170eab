package classify

import (
	"strings"
	"time"

	"github.com/user/auditfuse/pkg/engine"
	"github.com/user/auditfuse/pkg/ingest"
)

// A backup chain older than this is a failed chain.
const staleBackupThreshold = 24 * time.Hour

// Timestamp layouts seen across backup log exports, most specific
// first.
var backupTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 3:04:05 PM",
	"01/02/2006 15:04:05",
	"2006-01-02",
}

var successKeywords = []string{"successfully", "succeeded"}
var failureKeywords = []string{"fail", "error"}

// backupEvent is one log record with its timestamp parse result made
// explicit. Unparseable timestamps sort as the zero instant (oldest)
// but the record still participates in the failure scan.
type backupEvent struct {
	at      time.Time
	timeOK  bool
	message string
}

// ClassifyBackup maps backup job log records to a gap-based verdict.
// The reference instant is the most recent log timestamp when one
// exists, falling back to now only for logs with no parseable
// timestamps; measuring against capture time rather than analysis time
// keeps the verdict stable under re-analysis.
func ClassifyBackup(records []ingest.Record, now time.Time) engine.BackupVerdict {
	if len(records) == 0 {
		return engine.BackupVerdict{Status: engine.BackupUnknown}
	}

	events := make([]backupEvent, 0, len(records))
	for _, rec := range records {
		at, ok := parseBackupTime(rec.GetAny("TimeCreated", "TimeGenerated"))
		events = append(events, backupEvent{
			at:      at,
			timeOK:  ok,
			message: strings.ToLower(rec.Get("Message")),
		})
	}

	verdict := engine.BackupVerdict{}

	for i := range events {
		e := &events[i]
		if e.timeOK && (verdict.MostRecentLog == nil || e.at.After(*verdict.MostRecentLog)) {
			t := e.at
			verdict.MostRecentLog = &t
		}
		if containsAny(e.message, successKeywords) && e.timeOK &&
			(verdict.LastSuccess == nil || e.at.After(*verdict.LastSuccess)) {
			t := e.at
			verdict.LastSuccess = &t
		}
	}

	for _, e := range events {
		if !containsAny(e.message, failureKeywords) {
			continue
		}
		if verdict.LastSuccess == nil || e.at.After(*verdict.LastSuccess) {
			verdict.FailureCountSinceSuccess++
		}
	}

	reference := now
	if verdict.MostRecentLog != nil {
		reference = *verdict.MostRecentLog
	}
	success := time.Unix(0, 0).UTC()
	if verdict.LastSuccess != nil {
		success = *verdict.LastSuccess
	}
	verdict.HoursSinceSuccess = reference.Sub(success).Hours()

	if verdict.HoursSinceSuccess > staleBackupThreshold.Hours() {
		verdict.Status = engine.BackupFail
	} else {
		verdict.Status = engine.BackupPass
	}
	return verdict
}

// parseBackupTime tries the known layouts and reports whether any
// matched. The zero time is returned for unparseable values so they
// compare as older than every real instant.
func parseBackupTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range backupTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
