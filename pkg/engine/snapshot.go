package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const DefaultSnapshotPath = ".auditfuse-snapshot.json"

// SaveSnapshot persists a report to disk for future comparison
func SaveSnapshot(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a previously saved report
func LoadSnapshot(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &r, nil
}

// SnapshotDiff compares a current report with a baseline run
type SnapshotDiff struct {
	BaselineOverall Severity `json:"baseline_overall"`
	CurrentOverall  Severity `json:"current_overall"`
	New             []string `json:"new"`
	Resolved        []string `json:"resolved"`
	Unchanged       []string `json:"unchanged"`
}

// DiffSnapshot compares current against baseline, keying findings by
// their titles across both finding-bearing sources.
func DiffSnapshot(baseline, current *Report) *SnapshotDiff {
	base := findingTitles(baseline)
	cur := findingTitles(current)

	diff := &SnapshotDiff{
		BaselineOverall: baseline.Overall,
		CurrentOverall:  current.Overall,
	}

	seen := make(map[string]bool, len(base))
	for _, t := range base {
		seen[t] = true
	}
	inCurrent := make(map[string]bool, len(cur))
	for _, t := range cur {
		inCurrent[t] = true
		if seen[t] {
			diff.Unchanged = append(diff.Unchanged, t)
		} else {
			diff.New = append(diff.New, t)
		}
	}
	for _, t := range base {
		if !inCurrent[t] {
			diff.Resolved = append(diff.Resolved, t)
		}
	}
	return diff
}

// Summary renders the diff as a short text block
func (d *SnapshotDiff) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Baseline overall: %s -> Current overall: %s\n", d.BaselineOverall, d.CurrentOverall)
	fmt.Fprintf(&sb, "New: %d, Resolved: %d, Unchanged: %d\n", len(d.New), len(d.Resolved), len(d.Unchanged))
	for _, t := range d.New {
		fmt.Fprintf(&sb, "  [NEW] %s\n", t)
	}
	for _, t := range d.Resolved {
		fmt.Fprintf(&sb, "  [RESOLVED] %s\n", t)
	}
	return sb.String()
}

func findingTitles(r *Report) []string {
	titles := make([]string, 0, r.FindingCount())
	for _, f := range r.AD.Findings {
		titles = append(titles, f.Title)
	}
	for _, f := range r.SQL.Findings {
		titles = append(titles, f.Title)
	}
	return titles
}
