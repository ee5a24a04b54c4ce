package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_BareArray(t *testing.T) {
	v, ok := ExtractJSON(`[{"id":"a"}]`)
	require.True(t, ok)

	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 1)
	obj := arr[0].(map[string]any)
	assert.Equal(t, "a", obj["id"])
}

func TestExtractJSON_FencedWithProse(t *testing.T) {
	text := "Here is the result:\n```json\n[{\"id\":\"a\"}]\n```"

	v, ok := ExtractJSON(text)
	require.True(t, ok)

	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 1)
	assert.Equal(t, "a", arr[0].(map[string]any)["id"])
}

func TestExtractJSON_Object(t *testing.T) {
	v, ok := ExtractJSON("The model said: {\"priority\": \"low\"} and nothing else.")
	require.True(t, ok)

	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "low", obj["priority"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	v, ok := ExtractJSON("no json here")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestExtractJSON_Empty(t *testing.T) {
	_, ok := ExtractJSON("")
	assert.False(t, ok)
}

func TestExtractJSON_MultipleSpansReportsAbsent(t *testing.T) {
	// Two independent JSON fragments: the greedy span runs from the first {
	// to the last ], which does not parse. Single-attempt semantics report
	// absent instead of picking one of the spans.
	text := `For example {"id":"example"} would be wrong. Result: [{"id":"real"}]`

	v, ok := ExtractJSON(text)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestExtractJSON_WhitespaceWrapped(t *testing.T) {
	v, ok := ExtractJSON("\n\n  [1, 2, 3]  \n")
	require.True(t, ok)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, v)
}
