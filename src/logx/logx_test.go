package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelByString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, GetLoggerLevelByString("debug"))
	assert.Equal(t, zapcore.ErrorLevel, GetLoggerLevelByString("error"))
	assert.Equal(t, zapcore.InfoLevel, GetLoggerLevelByString("nonsense"))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)

	l.Debug("hidden")
	l.Named("puzzle").Infow("drop", "piece", 3)
	require.NoError(t, l.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "drop", rec["MESSAGE"])
	assert.Equal(t, "puzzle", rec["NAME"])
	assert.Equal(t, "info", rec["LEVEL"])
	assert.EqualValues(t, 3, rec["piece"])
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Errorf("nothing %d", 1)
	assert.NotNil(t, l.Named("x"))
}
