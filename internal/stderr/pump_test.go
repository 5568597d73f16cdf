package stderr

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPump_LogsNonBlankLines(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	pump(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \n  second line  \n"), log)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "warn", first["level"])
	assert.Equal(t, "stderr", first["source"])
	assert.Equal(t, "ALSA lib pcm.c: underrun", first["message"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "second line", second["message"])
}

func TestPump_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	pump(strings.NewReader(""), zerolog.New(&buf))
	assert.Empty(t, buf.String())
}
