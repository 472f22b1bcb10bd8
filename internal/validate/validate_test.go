package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fixdoc/internal/validate"
)

func TestJSON(t *testing.T) {
	assert.True(t, validate.JSON(`{"a": 1, "b": [true, null]}`))
	assert.True(t, validate.JSON(`"scalar"`))
	assert.False(t, validate.JSON(`{"a": 1 "b": 2}`))
	assert.False(t, validate.JSON(`{"a": [1,`))
	assert.False(t, validate.JSON(""))
}

func TestYAML(t *testing.T) {
	assert.True(t, validate.YAML("a: 1\nb:\n  - x\n  - y\n"))
	assert.True(t, validate.YAML(""))
	assert.False(t, validate.YAML("a:\n\tb: 1\n"))
	assert.False(t, validate.YAML("key: [unclosed"))
}

func TestXML(t *testing.T) {
	assert.True(t, validate.XML("<root><child>text</child></root>"))
	assert.True(t, validate.XML("<?xml version=\"1.0\"?>\n<root/>"))
	assert.False(t, validate.XML("<root><child>text</child>"))
	assert.False(t, validate.XML("<a></b>"))
	assert.False(t, validate.XML(""))
}

func TestXMLRejectsMultipleRoots(t *testing.T) {
	assert.False(t, validate.XML("<a></a><b></b>"))
}

func TestXMLRejectsStrayText(t *testing.T) {
	assert.False(t, validate.XML("text before <root/>"))
	assert.False(t, validate.XML("<root/> text after"))
}
