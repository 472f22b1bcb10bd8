package fixer

import "strings"

// YAML repairs whitespace-class defects: blank lines are dropped and each
// tab is replaced with four spaces. Indentation consistency and structural
// errors are untouched. Dropping blank lines can change the meaning of
// block scalars; that is a known limitation of the heuristic, kept rather
// than guessed at.
func YAML(content string) string {
	content = stripNonASCII(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var fixed []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fixed = append(fixed, strings.ReplaceAll(line, "\t", "    "))
	}
	return strings.Join(fixed, "\n")
}
