package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("step", "Given x").Msg("unrecognized step")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"step":"Given x"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "", "console")
	require.NoError(t, err)

	log.Info().Str("path", "outputs/test_login.py").Msg("generated test file")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "generated test file")
	assert.Contains(t, out, "path=outputs/test_login.py")
	assert.NotContains(t, out, "\x1b[")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "json")
	require.Error(t, err)
}
