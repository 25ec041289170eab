package engine

// Severity is the risk level attached to findings, verdicts, and the
// fused report. The zero value is SeverityUnknown ("no data supplied").
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Weight returns the position of s in the total order (higher = more
// severe). UNKNOWN sits below LOW so that absent data never escalates.
func (s Severity) Weight() int {
	return int(s)
}

// MaxSeverity reduces severities under the total order. With no
// arguments it returns SeverityUnknown.
func MaxSeverity(levels ...Severity) Severity {
	max := SeverityUnknown
	for _, l := range levels {
		if l.Weight() > max.Weight() {
			max = l
		}
	}
	return max
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	*s = ParseSeverity(string(text))
	return nil
}

// ParseSeverity maps a severity label back to its level. Unrecognized
// labels map to SeverityUnknown rather than failing.
func ParseSeverity(raw string) Severity {
	switch raw {
	case "CRITICAL", "critical":
		return SeverityCritical
	case "HIGH", "high":
		return SeverityHigh
	case "MEDIUM", "medium":
		return SeverityMedium
	case "LOW", "low":
		return SeverityLow
	default:
		return SeverityUnknown
	}
}

// BackupStatus is the health verdict for the backup log source. Backup
// health is a gap measurement, not a findings list, so it carries its
// own status type instead of a Severity.
type BackupStatus int

const (
	BackupUnknown BackupStatus = iota
	BackupPass
	BackupFail
)

func (b BackupStatus) String() string {
	switch b {
	case BackupPass:
		return "PASS"
	case BackupFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

func (b BackupStatus) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BackupStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "PASS", "pass":
		*b = BackupPass
	case "FAIL", "fail":
		*b = BackupFail
	default:
		*b = BackupUnknown
	}
	return nil
}

// AsSeverity maps the backup status into the severity order for the
// fusion maximum: a failed backup chain is always a critical condition,
// anything else contributes nothing to escalation.
func (b BackupStatus) AsSeverity() Severity {
	if b == BackupFail {
		return SeverityCritical
	}
	return SeverityLow
}
