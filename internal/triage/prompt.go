package triage

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/triage-api/internal/config"
	"github.com/sells-group/triage-api/internal/model"
	"github.com/sells-group/triage-api/pkg/anthropic"
)

const systemText = `You are a consumer-complaint triage analyst. You receive a JSON array of complaint records and return ONLY a JSON array with exactly one element per complaint, in the same order as the input.

Each output element must have exactly these fields:
- "id": the complaint's id, echoed back from the input
- "priority": one of "urgent", "medium", "low"
- "summary": a plain-language summary of the complaint, at most 240 characters
- "risk_score": a number from 0 to 100 estimating regulatory and reputational exposure
- "issues": an array of at most 10 objects, each with "text", "rationale", and "risk_category" (one of "legal", "financial", "safety", "service", "other")

Base every field strictly on evidence present in the submitted complaint text. Never invent facts, names, amounts, or ids that do not appear in the input. Return only the JSON array, with no surrounding prose and no markdown fences.`

// workedExample anchors the output format. It is format guidance only and is
// never treated as data.
const workedExample = `[
  {
    "id": "160614-000123",
    "priority": "urgent",
    "summary": "Customer reports repeated unauthorized withdrawals after closing the account and has received no response to two written disputes.",
    "risk_score": 87,
    "issues": [
      {
        "text": "Unauthorized account activity after closure",
        "rationale": "Withdrawals continued after the customer states the account was closed.",
        "risk_category": "financial"
      },
      {
        "text": "Ignored written disputes",
        "rationale": "Two disputes went unanswered, suggesting a complaint-handling breakdown.",
        "risk_category": "legal"
      }
    ]
  }
]`

const userPrompt = `Here is one fully worked example of the expected output format. It is format guidance only, not data:

%s

Analyze the following complaints and return the JSON array:

%s`

// TruncateBatch caps a batch at max elements. Complaints beyond the cap are
// silently dropped; the cap is the only resource control on a request.
func TruncateBatch(batch []model.ComplaintInput, max int) []model.ComplaintInput {
	if max > 0 && len(batch) > max {
		return batch[:max]
	}
	return batch
}

// BuildPrompt renders the instruction, the worked example, and the
// size-bounded batch into a single low-temperature completion request.
// Rendering is deterministic for a given batch: map keys marshal in sorted
// order.
func BuildPrompt(batch []model.ComplaintInput, cfg config.AnthropicConfig) (anthropic.MessageRequest, error) {
	payload, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return anthropic.MessageRequest{}, eris.Wrap(err, "triage: marshal batch")
	}

	temp := cfg.Temperature
	return anthropic.MessageRequest{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: &temp,
		System: []anthropic.SystemBlock{
			{Text: systemText},
		},
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(userPrompt, workedExample, string(payload))},
		},
	}, nil
}
