package pipeline

import (
	"strings"
	"testing"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantStatus VerdictStatus
	}{
		{"uppercase rejected", "REJECTED - contains phone number", VerdictRejected},
		{"lowercase rejected", "rejected, shares a home address", VerdictRejected},
		{"rejected mid-sentence", "This posting should be Rejected due to contact details", VerdictRejected},
		{"uppercase approved", "APPROVED - no issues", VerdictApproved},
		{"approved with commentary", "Looks fine. Approved.", VerdictApproved},
		{"rejected wins over approved", "APPROVED at first glance but REJECTED on review", VerdictRejected},
		{"neither token falls back to rejected", "I cannot evaluate this posting", VerdictRejected},
		{"empty response falls back to rejected", "", VerdictRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVerdict(tt.text)
			if got.Status != tt.wantStatus {
				t.Errorf("ParseVerdict(%q).Status = %q, want %q", tt.text, got.Status, tt.wantStatus)
			}
		})
	}
}

func TestParseVerdict_ReasonCarriesFullText(t *testing.T) {
	text := "  REJECTED - contains phone number  "
	got := ParseVerdict(text)
	if got.Reason != "REJECTED - contains phone number" {
		t.Errorf("Reason = %q, want the trimmed screener text", got.Reason)
	}
}

func TestParseVerdict_FallbackReasonExplains(t *testing.T) {
	got := ParseVerdict("garbled output")
	if !got.IsRejected() {
		t.Fatal("unparseable output should be rejected")
	}
	if !strings.Contains(got.Reason, "unrecognized") {
		t.Errorf("fallback reason = %q, want an explanation", got.Reason)
	}
	if !strings.Contains(got.Reason, "garbled output") {
		t.Errorf("fallback reason = %q, want the original text preserved", got.Reason)
	}
}
