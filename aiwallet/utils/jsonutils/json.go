package jsonutils

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reFence         = regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	reObj           = regexp.MustCompile(`(?s)\{.*\}`)
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// ExtractJSON tries to extract a JSON block from LLM output.
//
// Priority:
// 1. Triple-backtick fenced ```json ... ```
// 2. Any {...} JSON object
//
// Returns "" when the text holds no object.
func ExtractJSON(input string) string {
	// Remove BOMs and invisible control characters
	input = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\uFEFF' || r == '\u200B' || r == '\u200C' || r == '\u200D' {
			return -1 // skip
		}
		return r
	}, input))

	if match := reFence.FindStringSubmatch(input); len(match) > 1 {
		input = strings.TrimSpace(match[1])
	}
	// greedy match from first { to last }
	input = strings.TrimSpace(reObj.FindString(input))
	if input == "" {
		return ""
	}

	// Remove any trailing commas before closing braces/brackets
	return reTrailingComma.ReplaceAllString(input, "$1")
}

// ExtractObject returns the first JSON object embedded in text, or nil when
// there is none or it does not parse.
func ExtractObject(text string) map[string]interface{} {
	raw := ExtractJSON(text)
	if raw == "" {
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil
	}
	return obj
}

// ToJSON serializes a Go value to a JSON string with indentation.
// Returns an empty string if serialization fails.
func ToJSON(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(bytes))
}
