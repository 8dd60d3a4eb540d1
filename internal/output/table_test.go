package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	columns := []Column{
		{Name: "Target", Key: "target"},
		{Name: "Comment", Key: "comment", Width: 10},
	}
	rows := []map[string]string{
		{"target": "svc/db", "comment": "a comment long enough to truncate"},
		{"target": "svc/api", "comment": "short"},
	}

	RenderTable(&buf, columns, rows)

	out := buf.String()
	assert.Contains(t, out, "Target")
	assert.Contains(t, out, "svc/db")
	assert.Contains(t, out, "svc/api")
	assert.Contains(t, out, "a comme...")
	assert.NotContains(t, out, "truncate")
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []Column{{Name: "Target", Key: "target"}}, nil)
	assert.Empty(t, buf.String())
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exactly-10", TruncateString("exactly-10", 10))
	assert.Equal(t, "loooooo...", TruncateString("loooooooooong", 10))
	assert.Equal(t, "lo", TruncateString("long", 2))
}

func TestPadString(t *testing.T) {
	assert.Equal(t, "ab   ", PadString("ab", 5))
	assert.Equal(t, "abcdef", PadString("abcdef", 5))
}
