// Package fixer implements narrow textual repairs for common syntax defects
// in JSON, YAML and XML documents. Each fixer is a pure function over the
// file content targeting one pre-identified class of malformation; anything
// outside that class is left for the caller to reject.
package fixer

import "regexp"

var nonASCII = regexp.MustCompile(`[^\x00-\x7F]+`)

// stripNonASCII removes every character outside the ASCII range.
func stripNonASCII(s string) string {
	return nonASCII.ReplaceAllString(s, "")
}
