// Package detect infers the structured-data format of a file.
package detect

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fixdoc/internal/model"
)

// Detect infers the format of the file at path. A recognized extension wins
// outright; otherwise the first line of the content is classified by its
// leading token. The fallback is YAML, which is a guess, not a guarantee:
// any file whose first line starts with neither a bracket nor a tag is
// reported as YAML.
func Detect(path string) (model.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return model.FormatJSON, nil
	case ".yaml", ".yml":
		return model.FormatYAML, nil
	case ".xml":
		return model.FormatXML, nil
	}

	line, err := firstLine(path)
	if err != nil {
		return model.FormatUnknown, err
	}
	return classify(line), nil
}

// firstLine reads only the first line of the file; the rest of the content
// is never touched at detection time.
func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func classify(line string) model.Format {
	switch {
	case strings.HasPrefix(line, "{"), strings.HasPrefix(line, "["):
		return model.FormatJSON
	case strings.HasPrefix(line, "<?xml"), strings.HasPrefix(line, "<"):
		return model.FormatXML
	default:
		return model.FormatYAML
	}
}
