package model

// Priority is the triage urgency assigned to a complaint.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three allowed priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// MaxIssues caps the number of issues retained per result. Model output
// beyond the cap is truncated, not rejected.
const MaxIssues = 10

// Issue is a single concern the model identified in a complaint.
// RiskCategory is nil when the model did not supply one.
type Issue struct {
	Text         string  `json:"text"`
	Rationale    string  `json:"rationale"`
	RiskCategory *string `json:"risk_category"`
}

// AnalysisResult is the normalized triage outcome for one complaint,
// positionally aligned with the submitted batch. RiskScore is nil when the
// model did not supply a numeric score; otherwise it is clamped to [0,100].
// Raw preserves the model's per-item value untouched for audit.
type AnalysisResult struct {
	ID        string   `json:"id"`
	Priority  Priority `json:"priority"`
	Summary   string   `json:"summary"`
	RiskScore *float64 `json:"risk_score"`
	Issues    []Issue  `json:"issues"`
	Raw       any      `json:"raw"`
}

// AnalysisResponse is the successful payload for a batch analysis.
type AnalysisResponse struct {
	Count   int              `json:"count"`
	Results []AnalysisResult `json:"results"`
}
