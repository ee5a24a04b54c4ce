package triage

import (
	"encoding/json"
	"regexp"
)

// jsonSpan captures from the earliest { or [ to the last } or ] in the text.
// Greedy on purpose: the model is prompted to return only JSON, so the happy
// path is a full-document match and the span exists purely as tolerance for
// stray prose or markdown fences around the payload.
var jsonSpan = regexp.MustCompile(`(?s)[\[{].*[\]}]`)

// ExtractJSON finds the first JSON object or array embedded in text and
// returns its parsed value. Single attempt, no repair: if the greedy span
// does not parse (e.g. two independent JSON fragments produce a combined
// span), it reports absent rather than guessing at a narrower one.
func ExtractJSON(text string) (any, bool) {
	span := jsonSpan.FindString(text)
	if span == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(span), &v); err != nil {
		return nil, false
	}
	return v, true
}
