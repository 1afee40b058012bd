package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWithWriter(t *testing.T) {
	defer Init(false)

	var buf bytes.Buffer
	InitWithWriter(true, &buf)
	assert.True(t, Enabled())

	Debug("compiled query", "cube", "[Sales]")
	assert.Contains(t, buf.String(), "compiled query")
	assert.Contains(t, buf.String(), "cube=[Sales]")

	buf.Reset()
	InitWithWriter(false, &buf)
	assert.False(t, Enabled())

	Debug("hidden")
	Info("hidden")
	assert.Empty(t, buf.String())

	Error("shown", "error", "boom")
	assert.Contains(t, buf.String(), "shown")
}

func TestWith(t *testing.T) {
	defer Init(false)

	var buf bytes.Buffer
	InitWithWriter(true, &buf)

	With("component", "render").Info("done")
	assert.Contains(t, buf.String(), "component=render")
}
