package tests

import (
	"strings"
	"testing"
	"time"

	"github.com/user/auditfuse/pkg/classify"
	"github.com/user/auditfuse/pkg/engine"
	"github.com/user/auditfuse/pkg/ingest"
)

const sqlCSV = "Priority,Finding,Details,DatabaseName\n10,Backups not performed,No full backup in 30 days,HR\n"

const adCSV = "GroupName,Name,SamAccountName\nDomain Admins,Backup Service,svc_backup\n"

const backupCSV = "TimeCreated,Message\n2025-01-01T00:00:00Z,Backup failed\n"

func parse(t *testing.T, csv string) []ingest.Record {
	t.Helper()
	table, err := ingest.ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return table.Rows
}

func TestEndToEndCriticalScenario(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	report := engine.Fuse(
		classify.ClassifySQL(parse(t, sqlCSV)),
		classify.ClassifyAD(parse(t, adCSV)),
		classify.ClassifyBackup(parse(t, backupCSV), now),
	)

	if report.Overall != engine.SeverityCritical {
		t.Errorf("Expected overall CRITICAL, got %s", report.Overall)
	}

	if len(report.SQL.Findings) != 1 || report.SQL.Findings[0].Title != "No Backups: HR" {
		t.Errorf("Expected one SQL finding titled 'No Backups: HR', got %+v", report.SQL.Findings)
	}

	if len(report.AD.Findings) != 1 || report.AD.Findings[0].Title != "Unsecured Admin: svc_backup" {
		t.Errorf("Expected one AD finding titled 'Unsecured Admin: svc_backup', got %+v", report.AD.Findings)
	}

	if report.Backup.Status != engine.BackupFail {
		t.Errorf("Expected backup status FAIL, got %s", report.Backup.Status)
	}

	// Remediation priority: backup first, then AD, then SQL.
	if len(report.Remediation) != 3 {
		t.Fatalf("Expected 3 remediation items, got %d", len(report.Remediation))
	}
	if report.Remediation[0].Title != "Restore backup coverage" {
		t.Errorf("Expected backup remediation first, got %q", report.Remediation[0].Title)
	}
	if report.Remediation[1].Title != "Unsecured Admin: svc_backup" {
		t.Errorf("Expected AD remediation second, got %q", report.Remediation[1].Title)
	}
	if report.Remediation[2].Title != "No Backups: HR" {
		t.Errorf("Expected SQL remediation third, got %q", report.Remediation[2].Title)
	}
}

func TestEndToEndAllEmptyScenario(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	report := engine.Fuse(
		classify.ClassifySQL(nil),
		classify.ClassifyAD(nil),
		classify.ClassifyBackup(nil, now),
	)

	if report.Overall != engine.SeverityLow {
		t.Errorf("Expected overall LOW for empty inputs, got %s", report.Overall)
	}
	if report.SQL.Risk != engine.SeverityUnknown || report.AD.Risk != engine.SeverityUnknown {
		t.Errorf("Expected UNKNOWN source risks, got sql=%s ad=%s", report.SQL.Risk, report.AD.Risk)
	}
	if report.Backup.Status != engine.BackupUnknown {
		t.Errorf("Expected backup UNKNOWN, got %s", report.Backup.Status)
	}
	if len(report.Remediation) != 1 || report.Remediation[0].Title != "Schedule routine review" {
		t.Errorf("Expected the routine review fallback, got %+v", report.Remediation)
	}
}

func TestEndToEndClassifierIndependence(t *testing.T) {
	// The classifiers share no state: evaluating them in any order
	// yields the same verdicts.
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	backupFirst := classify.ClassifyBackup(parse(t, backupCSV), now)
	adFirst := classify.ClassifyAD(parse(t, adCSV))
	sqlFirst := classify.ClassifySQL(parse(t, sqlCSV))

	sqlSecond := classify.ClassifySQL(parse(t, sqlCSV))
	adSecond := classify.ClassifyAD(parse(t, adCSV))
	backupSecond := classify.ClassifyBackup(parse(t, backupCSV), now)

	if sqlFirst.Risk != sqlSecond.Risk || adFirst.Risk != adSecond.Risk || backupFirst.Status != backupSecond.Status {
		t.Error("Classifier results changed with evaluation order")
	}
}

func TestEndToEndWrongSlotDoesNotCrash(t *testing.T) {
	// The fingerprint check is a UX guard, not a safety requirement:
	// classifiers stay total even on mismatched data.
	report := engine.Fuse(
		classify.ClassifySQL(parse(t, adCSV)),
		classify.ClassifyAD(parse(t, backupCSV)),
		classify.ClassifyBackup(parse(t, sqlCSV), time.Now().UTC()),
	)
	if report == nil {
		t.Fatal("Expected a report even for mismatched inputs")
	}
	if report.Overall.Weight() < engine.SeverityLow.Weight() {
		t.Errorf("Overall should never be below LOW, got %s", report.Overall)
	}
}
