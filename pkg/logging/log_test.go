package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	level Level
	msg   string
}

func TestFuncSinkAndDefault(t *testing.T) {
	var events []recordedEvent
	prev := SetDefault(FuncSink(func(level Level, msg string) {
		events = append(events, recordedEvent{level, msg})
	}))
	defer SetDefault(prev)

	LogDebug("value=%d", 42)
	LogError("boom")

	require.Len(t, events, 2)
	assert.Equal(t, recordedEvent{LevelDebug, "value=42"}, events[0])
	assert.Equal(t, recordedEvent{LevelError, "boom"}, events[1])
}

func TestMultiSinkFansOut(t *testing.T) {
	var a, b int
	sink := MultiSink{
		FuncSink(func(Level, string) { a++ }),
		FuncSink(func(Level, string) { b++ }),
	}
	sink.Emit(LevelInfo, "hello")
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestFileSinkWritesLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	sink, err := NewFileSink(path)
	require.NoError(t, err)
	defer sink.Close()

	sink.Emit(LevelWarn, "disk almost full")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[WARN] disk almost full")
}

func TestSetDefaultNilFallsBackToNop(t *testing.T) {
	prev := SetDefault(nil)
	defer SetDefault(prev)
	// Must not panic.
	LogInfo("ignored")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}
