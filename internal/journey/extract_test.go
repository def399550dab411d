package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCandidatePrefersLabeledFence(t *testing.T) {
	content := "Here is your journey:\n```\nnot the payload\n```\nand the real one:\n```json\n{\"course\": {}}\n```\nEnjoy!"
	assert.Equal(t, `{"course": {}}`, extractCandidate(content))
}

func TestExtractCandidateFallsBackToAnyFence(t *testing.T) {
	content := "Sure!\n```\n{\"course\": {}}\n```"
	assert.Equal(t, `{"course": {}}`, extractCandidate(content))
}

func TestExtractCandidateUnclosedFence(t *testing.T) {
	content := "Here you go:\n```json\n{\"course\": {\"steps\": [{\"step_number\": 1}]}}"
	assert.Equal(t, `{"course": {"steps": [{"step_number": 1}]}}`, extractCandidate(content))

	content = "Sure!\n```\n{\"course\": {}}"
	assert.Equal(t, `{"course": {}}`, extractCandidate(content))
}

func TestParsePayloadAcceptsUnclosedFence(t *testing.T) {
	payload, err := parsePayload("```json\n{\"course\": {\"steps\": [{\"step_number\": 1}]}}")
	require.NoError(t, err)
	assert.JSONEq(t, `{"course": {"steps": [{"step_number": 1}]}}`, string(payload))
}

func TestExtractCandidateRawText(t *testing.T) {
	assert.Equal(t, `{"course": {}}`, extractCandidate("  {\"course\": {}}\n"))
}

func TestParsePayloadAcceptsCourseWithSteps(t *testing.T) {
	content := "```json\n{\"course\": {\"title\": \"x\", \"steps\": [{\"step_number\": 1}]}}\n```"
	payload, err := parsePayload(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"course": {"title": "x", "steps": [{"step_number": 1}]}}`, string(payload))
}

func TestParsePayloadRejectsNonJSON(t *testing.T) {
	_, err := parsePayload("I'm sorry, I can't produce that document.")
	assert.ErrorIs(t, err, errNotJSON)
}

func TestParsePayloadRejectsMissingSteps(t *testing.T) {
	_, err := parsePayload(`{"course": {"title": "x"}}`)
	assert.ErrorIs(t, err, errShape)

	_, err = parsePayload(`{"something": "else"}`)
	assert.ErrorIs(t, err, errShape)

	_, err = parsePayload(`[1, 2, 3]`)
	assert.ErrorIs(t, err, errNotJSON)
}
