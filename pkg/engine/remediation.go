package engine

import "fmt"

// RemediationItem is one prioritized step in the remediation plan
type RemediationItem struct {
	Priority  int    `json:"priority"`
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
}

// buildPlan assembles the remediation plan in fixed priority order:
// backup failure first, then AD findings, then SQL findings. When the
// fused severity is below CRITICAL the plan collapses to a single
// routine-review item.
func buildPlan(overall Severity, sql, ad SourceVerdict, backup BackupVerdict) []RemediationItem {
	if overall != SeverityCritical {
		return []RemediationItem{{
			Priority:  1,
			Title:     "Schedule routine review",
			Rationale: "No critical exposure detected in this audit round. Review findings at the next maintenance window.",
		}}
	}

	var plan []RemediationItem
	priority := 1

	if backup.Status == BackupFail {
		plan = append(plan, RemediationItem{
			Priority: priority,
			Title:    "Restore backup coverage",
			Rationale: fmt.Sprintf("%.1f hours since the last successful backup with %d failures logged since.",
				backup.HoursSinceSuccess, backup.FailureCountSinceSuccess),
		})
		priority++
	}

	for _, f := range ad.Findings {
		plan = append(plan, RemediationItem{
			Priority:  priority,
			Title:     f.Title,
			Rationale: f.Description,
		})
		priority++
	}

	for _, f := range sql.Findings {
		plan = append(plan, RemediationItem{
			Priority:  priority,
			Title:     f.Title,
			Rationale: f.Description,
		})
		priority++
	}

	return plan
}
