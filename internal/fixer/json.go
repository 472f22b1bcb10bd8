package fixer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// missingComma matches a value-ending token (digit, literal letter or
// closing quote) separated from the start of the next `"key":` by nothing
// but whitespace. It assumes the only defect is a missing comma between
// sibling fields; structural errors like unbalanced brackets are out of
// reach.
var missingComma = regexp.MustCompile(`(?i)([0-9truefalsen'"])\s*("[^"]+"\s*:)`)

// JSON attempts to repair content that failed JSON validation: non-ASCII
// characters are stripped, line endings normalized to LF and missing commas
// between sibling fields inserted. The result must re-parse; if it does
// not, the defect is outside what the heuristic can express and the
// parser's own error is returned.
func JSON(content string) (string, error) {
	content = stripNonASCII(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = missingComma.ReplaceAllString(content, "$1,\n$2")

	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return "", fmt.Errorf("cannot auto-fix JSON: %w", err)
	}
	return indentJSON(content), nil
}

// WrapJSONInArray ensures the top-level value of content is an array,
// wrapping anything else in a single-element array. Content that does not
// parse is returned unchanged together with the parse error, so a wrap
// request can never lose data.
func WrapJSONInArray(content string) (string, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return content, err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		return content, nil
	}
	wrapped, err := json.MarshalIndent([]json.RawMessage{raw}, "", "  ")
	if err != nil {
		return content, err
	}
	return string(wrapped), nil
}

// indentJSON reformats a known-valid document with two-space indentation.
// json.Indent keeps the original key order, which a round trip through a Go
// map would not.
func indentJSON(content string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace([]byte(content)), "", "  "); err != nil {
		return content
	}
	return buf.String()
}
