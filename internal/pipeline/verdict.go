package pipeline

import "strings"

// VerdictStatus classifies a screening result.
type VerdictStatus string

const (
	VerdictApproved VerdictStatus = "approved"
	VerdictRejected VerdictStatus = "rejected"
)

// Verdict is the structured screening result. Reason carries the screener's
// full response text.
type Verdict struct {
	Status VerdictStatus
	Reason string
}

// IsRejected returns true if the submission was rejected.
func (v Verdict) IsRejected() bool {
	return v.Status == VerdictRejected
}

// ParseVerdict classifies the screener's free-text response. A "rejected"
// token anywhere wins over "approved" so a response like "approved, but
// rejected on privacy grounds" fails closed. A response containing neither
// token is treated as rejected: an unreadable screen is not an approval.
func ParseVerdict(text string) Verdict {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.Contains(lower, "rejected"):
		return Verdict{Status: VerdictRejected, Reason: trimmed}
	case strings.Contains(lower, "approved"):
		return Verdict{Status: VerdictApproved, Reason: trimmed}
	default:
		return Verdict{
			Status: VerdictRejected,
			Reason: "screening response was unrecognized: " + trimmed,
		}
	}
}
