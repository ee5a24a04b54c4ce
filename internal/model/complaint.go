package model

// ComplaintInput is one record in a submitted analysis batch. Callers send
// arbitrary descriptive fields (product, issue, consumer, rawText, ...) and
// no shape is enforced beyond membership in the batch, so the record is kept
// as a loose map and everything the caller sent survives into the prompt.
type ComplaintInput map[string]any

// ID returns the record's "id" field, or "" if absent or not a string.
func (c ComplaintInput) ID() string {
	return c.stringField("id")
}

// ComplaintID returns the record's "complaintId" field, or "" if absent or
// not a string.
func (c ComplaintInput) ComplaintID() string {
	return c.stringField("complaintId")
}

func (c ComplaintInput) stringField(key string) string {
	if c == nil {
		return ""
	}
	s, _ := c[key].(string)
	return s
}
