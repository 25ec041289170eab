// Package report renders a fused audit report for terminals and files.
package report

import (
	"fmt"
	"strings"

	"github.com/user/auditfuse/pkg/engine"
)

// Text renders the plain-text summary of a report
func Text(r *engine.Report) string {
	var sb strings.Builder

	sb.WriteString("AUDIT RISK ASSESSMENT\n")
	sb.WriteString("--------------------------------------------------\n")
	fmt.Fprintf(&sb, "Run ID:    %s\n", r.ID)
	fmt.Fprintf(&sb, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&sb, "Overall:   %s\n\n", r.Overall)

	writeSource(&sb, "SQL SERVER HEALTH", r.SQL)
	writeSource(&sb, "ACTIVE DIRECTORY", r.AD)
	writeBackup(&sb, r.Backup)

	sb.WriteString("REMEDIATION PLAN\n")
	for _, item := range r.Remediation {
		fmt.Fprintf(&sb, "%d. %s\n", item.Priority, item.Title)
		fmt.Fprintf(&sb, "   %s\n", item.Rationale)
	}
	return sb.String()
}

func writeSource(sb *strings.Builder, name string, v engine.SourceVerdict) {
	fmt.Fprintf(sb, "%s (risk: %s)\n", name, v.Risk)
	if len(v.Findings) == 0 {
		sb.WriteString("  No findings.\n\n")
		return
	}
	for _, f := range v.Findings {
		fmt.Fprintf(sb, "  [%s] %s\n", f.Severity, f.Title)
		if f.Description != "" {
			fmt.Fprintf(sb, "    %s\n", f.Description)
		}
		if f.Impact != "" {
			fmt.Fprintf(sb, "    Impact: %s\n", f.Impact)
		}
	}
	sb.WriteString("\n")
}

func writeBackup(sb *strings.Builder, v engine.BackupVerdict) {
	fmt.Fprintf(sb, "BACKUP JOBS (status: %s)\n", v.Status)
	if v.Status == engine.BackupUnknown {
		sb.WriteString("  No backup log data supplied.\n\n")
		return
	}
	fmt.Fprintf(sb, "  Hours since last success: %.1f\n", v.HoursSinceSuccess)
	if v.LastSuccess != nil {
		fmt.Fprintf(sb, "  Last success:             %s\n", v.LastSuccess.Format("2006-01-02 15:04:05 UTC"))
	} else {
		sb.WriteString("  Last success:             never\n")
	}
	if v.MostRecentLog != nil {
		fmt.Fprintf(sb, "  Most recent log entry:    %s\n", v.MostRecentLog.Format("2006-01-02 15:04:05 UTC"))
	}
	fmt.Fprintf(sb, "  Failures since success:   %d\n\n", v.FailureCountSinceSuccess)
}
