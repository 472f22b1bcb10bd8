// Package validate wraps the canonical parser of each supported format
// behind a pass/fail verdict. Parse errors are never surfaced; a document
// is either fully valid or it is not.
package validate

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSON reports whether content is a well-formed JSON document.
func JSON(content string) bool {
	var v any
	return json.Unmarshal([]byte(content), &v) == nil
}

// YAML reports whether content is a well-formed YAML document.
func YAML(content string) bool {
	var v any
	return yaml.Unmarshal([]byte(content), &v) == nil
}

// XML reports whether content is a well-formed XML document with a single
// root element. encoding/xml's token scanner tolerates multiple top-level
// elements and stray character data, so both are rejected here explicitly.
func XML(content string) bool {
	dec := xml.NewDecoder(strings.NewReader(content))
	depth := 0
	seenRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return seenRoot && depth == 0
		}
		if err != nil {
			return false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && seenRoot {
				return false
			}
			seenRoot = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return false
			}
		}
	}
}
