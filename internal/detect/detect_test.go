package detect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdoc/internal/detect"
	"fixdoc/internal/model"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectByExtension(t *testing.T) {
	cases := map[string]model.Format{
		"data.json": model.FormatJSON,
		"data.yaml": model.FormatYAML,
		"data.yml":  model.FormatYAML,
		"data.XML":  model.FormatXML,
	}
	for name, want := range cases {
		// The file does not exist: a recognized extension must win without
		// the content ever being read.
		got, err := detect.Detect(filepath.Join("nowhere", name))
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestDetectByContent(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    model.Format
	}{
		{"object", "{\"a\": 1}", model.FormatJSON},
		{"array", "[1, 2]", model.FormatJSON},
		{"declaration", "<?xml version=\"1.0\"?>\n<root/>", model.FormatXML},
		{"bare-tag", "<root></root>", model.FormatXML},
		{"fallback", "key: value", model.FormatYAML},
		{"empty", "", model.FormatYAML},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "data.txt", tc.content)
			got, err := detect.Detect(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectMissingFileWithoutExtension(t *testing.T) {
	_, err := detect.Detect(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
