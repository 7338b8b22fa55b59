package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestStreams(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	prevOut, prevErr, prevNoColor := color.Output, color.Error, color.NoColor
	color.Output, color.Error, color.NoColor = stdout, stderr, true
	defer func() { color.Output, color.Error, color.NoColor = prevOut, prevErr, prevNoColor }()

	Info("ok %s\n", "numpy")
	Warn("missing\n")
	Error("failed %d\n", 1)

	assert.Equal(t, "ok numpy\nmissing\n", stdout.String())
	assert.Equal(t, "failed 1\n", stderr.String())

	Init(false)
	Debug("hidden\n")
	assert.NotContains(t, stdout.String(), "hidden")

	Init(true)
	defer Init(false)
	Debug("shown\n")
	assert.Contains(t, stdout.String(), "shown")
}
