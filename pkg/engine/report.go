package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report is the terminal output of one audit run: the three source
// verdicts, the fused overall severity, and the remediation plan.
// It is constructed once by Fuse and read-only afterwards.
type Report struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	SQL         SourceVerdict     `json:"sql"`
	AD          SourceVerdict     `json:"ad"`
	Backup      BackupVerdict     `json:"backup"`
	Overall     Severity          `json:"overall"`
	Remediation []RemediationItem `json:"remediation"`
}

// Fuse combines the three source verdicts into a Report. The overall
// severity is the total-order maximum of the contributing risks, with
// UNKNOWN verdicts contributing nothing: missing data never suppresses
// escalation from the sources that are present, and never escalates on
// its own.
func Fuse(sql, ad SourceVerdict, backup BackupVerdict) *Report {
	overall := MaxSeverity(
		SeverityLow,
		sql.Risk,
		ad.Risk,
		backup.Status.AsSeverity(),
	)

	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		SQL:         sql,
		AD:          ad,
		Backup:      backup,
		Overall:     overall,
		Remediation: buildPlan(overall, sql, ad, backup),
	}
}

// CriticalCount returns how many findings across both finding-bearing
// sources are CRITICAL.
func (r *Report) CriticalCount() int {
	n := 0
	for _, f := range r.SQL.Findings {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	for _, f := range r.AD.Findings {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// FindingCount returns the total number of findings in the report.
func (r *Report) FindingCount() int {
	return len(r.SQL.Findings) + len(r.AD.Findings)
}

func (r *Report) String() string {
	return fmt.Sprintf("Report %s: overall=%s findings=%d backup=%s",
		r.ID, r.Overall, r.FindingCount(), r.Backup.Status)
}
