package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/auditfuse/pkg/engine"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	badgeStyles = map[engine.Severity]lipgloss.Style{
		engine.SeverityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Padding(0, 1),
		engine.SeverityHigh:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")).Padding(0, 1),
		engine.SeverityMedium:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Padding(0, 1),
		engine.SeverityLow:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("114")).Padding(0, 1),
		engine.SeverityUnknown:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Padding(0, 1),
	}

	dimStyle = lipgloss.NewStyle().Faint(true)
)

func badge(s engine.Severity) string {
	return badgeStyles[s].Render(s.String())
}

// Pretty renders a styled terminal view of the report
func Pretty(r *engine.Report) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Audit Risk Assessment"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s\n", badge(r.Overall), dimStyle.Render("overall severity"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("run %s, generated %s", r.ID, r.GeneratedAt.Format("2006-01-02 15:04 UTC"))))
	sb.WriteString("\n")

	prettySource(&sb, "SQL Server Health", r.SQL)
	prettySource(&sb, "Active Directory", r.AD)
	prettyBackup(&sb, r.Backup)

	sb.WriteString(sectionStyle.Render("Remediation Plan"))
	sb.WriteString("\n")
	for _, item := range r.Remediation {
		fmt.Fprintf(&sb, "  %d. %s\n", item.Priority, item.Title)
		fmt.Fprintf(&sb, "     %s\n", dimStyle.Render(item.Rationale))
	}
	return sb.String()
}

func prettySource(sb *strings.Builder, name string, v engine.SourceVerdict) {
	sb.WriteString(sectionStyle.Render(name))
	fmt.Fprintf(sb, " %s\n", badge(v.Risk))
	if len(v.Findings) == 0 {
		sb.WriteString(dimStyle.Render("  no findings"))
		sb.WriteString("\n")
		return
	}
	for _, f := range v.Findings {
		fmt.Fprintf(sb, "  %s %s\n", badge(f.Severity), f.Title)
		if f.Description != "" {
			fmt.Fprintf(sb, "     %s\n", dimStyle.Render(f.Description))
		}
	}
}

func statusBadge(b engine.BackupStatus) string {
	switch b {
	case engine.BackupFail:
		return badgeStyles[engine.SeverityCritical].Render("FAIL")
	case engine.BackupPass:
		return badgeStyles[engine.SeverityLow].Render("PASS")
	default:
		return badgeStyles[engine.SeverityUnknown].Render("UNKNOWN")
	}
}

func prettyBackup(sb *strings.Builder, v engine.BackupVerdict) {
	sb.WriteString(sectionStyle.Render("Backup Jobs"))
	fmt.Fprintf(sb, " %s\n", statusBadge(v.Status))
	if v.Status == engine.BackupUnknown {
		sb.WriteString(dimStyle.Render("  no backup log data supplied"))
		sb.WriteString("\n")
		return
	}
	fmt.Fprintf(sb, "  %.1f hours since last success, %d failures since\n",
		v.HoursSinceSuccess, v.FailureCountSinceSuccess)
}
