package model

import "strings"

// Format identifies the structured-data format of a file.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatXML     Format = "xml"
	FormatUnknown Format = ""
)

// String returns the display name of the format.
func (f Format) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return strings.ToUpper(string(f))
}
