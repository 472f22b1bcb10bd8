package fixer

import (
	"regexp"
	"strings"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

var openingTag = regexp.MustCompile(`<(\w+)`)

// XML prepends a missing declaration and closes a missing root tag. The
// first opening tag is assumed to be the document root; its specific
// closing tag must terminate the document, so a trailing closing tag of a
// nested element does not count. Nested unclosed tags are not balanced.
func XML(content string) string {
	content = stripNonASCII(content)

	if !strings.HasPrefix(content, "<?xml") {
		content = xmlDeclaration + "\n" + content
	}
	if m := openingTag.FindStringSubmatch(content); m != nil {
		closing := "</" + m[1] + ">"
		if !strings.HasSuffix(strings.TrimSpace(content), closing) {
			content += "\n" + closing
		}
	}
	return content
}
