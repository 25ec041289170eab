package classify

import (
	"fmt"
	"strings"

	"github.com/user/auditfuse/pkg/engine"
	"github.com/user/auditfuse/pkg/ingest"
)

// redFlagKeywords mark account name patterns that indicate a shared,
// vendor, or service identity. Any of these inside an admin group
// membership is an unsecured-admin condition.
var redFlagKeywords = []string{
	"temp",
	"scanner",
	"backup",
	"service",
	"test",
	"msp",
	"vendor",
	"printer",
	"copy",
}

// ClassifyAD maps Active Directory group membership records to a
// verdict. A record counts only when its group name contains "admin"
// and the display name or account name carries a red-flag keyword.
func ClassifyAD(records []ingest.Record) engine.SourceVerdict {
	if len(records) == 0 {
		return engine.SourceVerdict{Risk: engine.SeverityUnknown}
	}

	verdict := engine.SourceVerdict{Risk: engine.SeverityLow}
	for _, rec := range records {
		group := rec.Get("GroupName")
		if !strings.Contains(strings.ToLower(group), "admin") {
			continue
		}

		sam := rec.Get("SamAccountName")
		account := strings.ToLower(rec.Get("Name") + sam)
		keyword, flagged := matchRedFlag(account)
		if !flagged {
			continue
		}

		verdict.Findings = append(verdict.Findings, engine.Finding{
			Severity:    engine.SeverityCritical,
			Title:       fmt.Sprintf("Unsecured Admin: %s", sam),
			Description: fmt.Sprintf("Account %q in group %q matches red-flag pattern %q.", sam, group, keyword),
			Impact:      "Shared or service identities with admin rights are prime lateral-movement targets.",
		})
		verdict.Risk = engine.MaxSeverity(verdict.Risk, engine.SeverityCritical)
	}
	return verdict
}

func matchRedFlag(account string) (string, bool) {
	for _, kw := range redFlagKeywords {
		if strings.Contains(account, kw) {
			return kw, true
		}
	}
	return "", false
}
