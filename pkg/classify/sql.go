// Package classify holds the three per-source heuristic classifiers.
// Each is a pure total function from a record sequence to a verdict:
// malformed fields get safe defaults, never errors.
package classify

import (
	"fmt"
	"strings"

	"github.com/user/auditfuse/pkg/engine"
	"github.com/user/auditfuse/pkg/ingest"
)

// Records with a priority above this are informational noise from the
// health check tool and are never actionable.
const sqlActionablePriority = 50

// Unparseable priorities deprioritize rather than fail.
const sqlDefaultPriority = 999

// sqlRule matches a substring of the health check's Finding text and
// fixes the severity and titling of the emitted finding. First match
// wins; rules are ordered most to least severe.
type sqlRule struct {
	match    string
	severity engine.Severity
	title    string
	impact   string
}

var sqlRules = []sqlRule{
	{
		match:    "backups not performed",
		severity: engine.SeverityCritical,
		title:    "No Backups: %s",
		impact:   "Data loss exposure: this database cannot be restored after a failure.",
	},
	{
		match:    "corruption check",
		severity: engine.SeverityHigh,
		title:    "Corruption Check Overdue: %s",
		impact:   "Undetected page corruption can silently spread into backups.",
	},
}

// sqlFallback covers actionable records no rule matched.
var sqlFallback = sqlRule{
	severity: engine.SeverityMedium,
	title:    "Config Issue: %s",
	impact:   "Configuration drift from the server health baseline.",
}

// ClassifySQL maps SQL server health check records to a verdict. The
// risk level is the fold of emitted finding severities under the total
// order, so record order never changes the outcome, only the findings
// list order.
func ClassifySQL(records []ingest.Record) engine.SourceVerdict {
	if len(records) == 0 {
		return engine.SourceVerdict{Risk: engine.SeverityUnknown}
	}

	verdict := engine.SourceVerdict{Risk: engine.SeverityLow}
	for _, rec := range records {
		if parseIntOr(rec.Get("Priority"), sqlDefaultPriority) > sqlActionablePriority {
			continue
		}

		rule := sqlFallback
		text := strings.ToLower(rec.Get("Finding"))
		for _, r := range sqlRules {
			if strings.Contains(text, r.match) {
				rule = r
				break
			}
		}

		db := rec.Get("DatabaseName")
		verdict.Findings = append(verdict.Findings, engine.Finding{
			Severity:    rule.severity,
			Title:       fmt.Sprintf(rule.title, db),
			Description: strings.TrimSpace(rec.Get("Finding") + " " + rec.Get("Details")),
			Impact:      rule.impact,
		})
		verdict.Risk = engine.MaxSeverity(verdict.Risk, rule.severity)
	}
	return verdict
}
