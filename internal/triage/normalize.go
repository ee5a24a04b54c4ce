package triage

import (
	"fmt"
	"strings"

	"github.com/sells-group/triage-api/internal/model"
)

// Normalize maps loosely-typed model output onto the strict result schema.
// It iterates the model's array (not the input batch), using batch[i] as the
// positional fallback source for ids. A non-array top level yields an empty
// slice, which the orchestrator treats as total failure for the batch.
//
// Normalize is pure and total: malformed fields degrade to defaults and
// never abort the batch.
func Normalize(parsed any, batch []model.ComplaintInput) []model.AnalysisResult {
	arr, ok := parsed.([]any)
	if !ok {
		return nil
	}

	results := make([]model.AnalysisResult, 0, len(arr))
	for i, el := range arr {
		var input model.ComplaintInput
		if i < len(batch) {
			input = batch[i]
		}
		results = append(results, normalizeItem(el, input, i))
	}
	return results
}

func normalizeItem(el any, input model.ComplaintInput, pos int) model.AnalysisResult {
	// Reads on a nil map are safe, so a non-object element still produces a
	// fully defaulted row.
	obj, _ := el.(map[string]any)

	res := model.AnalysisResult{
		ID:       resolveID(obj, input, pos),
		Priority: normalizePriority(obj["priority"]),
		Issues:   normalizeIssues(obj["issues"]),
		Raw:      el,
	}

	if s, ok := obj["summary"].(string); ok {
		res.Summary = s
	}

	if score, ok := toFloat64(obj["risk_score"]); ok {
		clamped := clampScore(score)
		res.RiskScore = &clamped
	}

	return res
}

// resolveID falls through model id → input.id → input.complaintId → a
// positional placeholder.
func resolveID(obj map[string]any, input model.ComplaintInput, pos int) string {
	if s, ok := obj["id"].(string); ok && s != "" {
		return s
	}
	if s := input.ID(); s != "" {
		return s
	}
	if s := input.ComplaintID(); s != "" {
		return s
	}
	return fmt.Sprintf("complaint-%d", pos+1)
}

func normalizePriority(v any) model.Priority {
	s, _ := v.(string)
	p := model.Priority(strings.ToLower(s))
	if !p.Valid() {
		return model.PriorityMedium
	}
	return p
}

func normalizeIssues(v any) []model.Issue {
	arr, ok := v.([]any)
	if !ok {
		return []model.Issue{}
	}
	if len(arr) > model.MaxIssues {
		arr = arr[:model.MaxIssues]
	}

	issues := make([]model.Issue, 0, len(arr))
	for _, el := range arr {
		obj, _ := el.(map[string]any)

		var issue model.Issue
		if s, ok := obj["text"].(string); ok {
			issue.Text = s
		}
		// "reason" and "category" are accepted as synonyms; the model drifts
		// between the two namings.
		if s, ok := obj["rationale"].(string); ok {
			issue.Rationale = s
		} else if s, ok := obj["reason"].(string); ok {
			issue.Rationale = s
		}
		if s, ok := obj["risk_category"].(string); ok {
			issue.RiskCategory = &s
		} else if s, ok := obj["category"].(string); ok {
			issue.RiskCategory = &s
		}
		issues = append(issues, issue)
	}
	return issues
}

func clampScore(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return f
}

// toFloat64 coerces JSON numeric values. Strings are not accepted: the
// contract requires a number and anything else records an absent score.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
