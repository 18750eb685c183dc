package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("loud"))
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", "", &buf)

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Str("bank_code", "999").Msg("bank not found")
	assert.Contains(t, buf.String(), "bank not found")
	assert.Contains(t, buf.String(), "999")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuban.log")

	var buf bytes.Buffer
	l := New("info", path, &buf)
	l.Info().Str("bank_code", "058").Msg("validated")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bank_code":"058"`)
	assert.Contains(t, buf.String(), "validated")
}
