package engine

import "time"

// Finding represents one discrete flagged issue from a source classifier
type Finding struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
}

// SourceVerdict is a classifier's aggregate risk plus its findings for
// one data source. Findings keep the order the matching rules fired in.
type SourceVerdict struct {
	Risk     Severity  `json:"risk"`
	Findings []Finding `json:"findings"`
}

// BackupVerdict is the backup log source's verdict. Unlike the SQL and
// AD sources it measures a continuous gap since the last good backup
// rather than emitting discrete rule hits.
type BackupVerdict struct {
	Status                   BackupStatus `json:"status"`
	HoursSinceSuccess        float64      `json:"hours_since_success"`
	LastSuccess              *time.Time   `json:"last_success,omitempty"`
	MostRecentLog            *time.Time   `json:"most_recent_log,omitempty"`
	FailureCountSinceSuccess int          `json:"failure_count_since_success"`
}
