package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, true)
	t.Cleanup(func() { _ = Close() })

	Debug(CatCLI, "rendered sequence", "bytes", 12)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "cat=cli")
	assert.Contains(t, out, "bytes=12")
}

func TestSetOutput_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, false)
	t.Cleanup(func() { _ = Close() })

	Debug(CatConfig, "hidden")
	Warn(CatConfig, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestErrorErr_AttachesError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, false)
	t.Cleanup(func() { _ = Close() })

	ErrorErr(CatClipboard, "write failed", errors.New("broken pipe"), "output", "/dev/tty")

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `error="broken pipe"`)
	assert.Contains(t, out, "output=/dev/tty")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "osc52.log")

	require.NoError(t, Init(path, true))
	Info(CatCLI, "hello")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}

func TestInit_EmptyPathDisables(t *testing.T) {
	require.NoError(t, Init("", true))
	assert.NotPanics(t, func() { Info(CatCLI, "dropped") })
	require.NoError(t, Close())
}
