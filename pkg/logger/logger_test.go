package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"cleanpro-web/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "warn")

	logger.Log.Info("hidden")
	logger.Log.Warn("shown", "form_id", "abc")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "abc", entry["form_id"])
}
