package journey

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	jsonFence = "```json"
	anyFence  = "```"
)

var (
	errNotJSON = errors.New("content is not valid JSON")
	errShape   = errors.New("content is missing course steps")
)

// extractCandidate pulls the most likely JSON substring out of free-form
// model output. Precedence: a ```json fenced block, then any fenced block,
// then the raw text. A fence with no closing marker, as a completion
// truncated at the token budget leaves behind, extends to the end of the
// text.
func extractCandidate(content string) string {
	if _, after, ok := strings.Cut(content, jsonFence); ok {
		body, _, _ := strings.Cut(after, anyFence)
		return strings.TrimSpace(body)
	}
	if _, after, ok := strings.Cut(content, anyFence); ok {
		body, _, _ := strings.Cut(after, anyFence)
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(content)
}

// parsePayload extracts and parses a journey document from model output.
// The document is kept as raw JSON; beyond being an object carrying a
// non-empty course.steps array its content is not constrained.
func parsePayload(content string) (json.RawMessage, error) {
	candidate := extractCandidate(content)

	var doc struct {
		Course *struct {
			Steps []json.RawMessage `json:"steps"`
		} `json:"course"`
	}
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, errNotJSON
	}
	if doc.Course == nil || len(doc.Course.Steps) == 0 {
		return nil, errShape
	}
	return json.RawMessage(candidate), nil
}
