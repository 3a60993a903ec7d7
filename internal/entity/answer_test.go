package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSetDecodeShapes(t *testing.T) {
	var answers AnswerSet
	err := json.Unmarshal([]byte(`{
		"q1": "always",
		"q2": 4,
		"q3": true,
		"q4": ["a", "b"]
	}`), &answers)
	require.NoError(t, err)

	assert.Equal(t, AnswerText, answers["q1"].Kind)
	assert.Equal(t, "always", answers["q1"].Text)
	assert.Equal(t, AnswerNumber, answers["q2"].Kind)
	assert.Equal(t, 4.0, answers["q2"].Number)
	assert.Equal(t, AnswerBool, answers["q3"].Kind)
	assert.True(t, answers["q3"].Bool)
	assert.Equal(t, AnswerList, answers["q4"].Kind)
	assert.Equal(t, []string{"a", "b"}, answers["q4"].List)
}

func TestAnswerSetRejectsNestedObject(t *testing.T) {
	var answers AnswerSet
	err := json.Unmarshal([]byte(`{"q1": {"nested": "object"}}`), &answers)
	assert.ErrorIs(t, err, ErrMalformedAnswer)
}

func TestAnswerSetRejectsMixedList(t *testing.T) {
	var answers AnswerSet
	err := json.Unmarshal([]byte(`{"q1": ["a", 1]}`), &answers)
	assert.ErrorIs(t, err, ErrMalformedAnswer)
}

func TestAnswerSetRoundTrip(t *testing.T) {
	answers := AnswerSet{
		"q1": TextAnswer("always"),
		"q2": {Kind: AnswerNumber, Number: 3},
		"q3": {Kind: AnswerList, List: []string{"x"}},
	}
	raw, err := answers.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"q1":"always","q2":3,"q3":["x"]}`, string(raw))

	var decoded AnswerSet
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, answers, decoded)
}

func TestNilAnswerSetRendersEmptyObject(t *testing.T) {
	var answers AnswerSet
	raw, err := answers.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
