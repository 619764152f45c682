package logging

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Level classifies a diagnostic event.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Sink receives diagnostic events. The core never references a concrete
// output surface; the UI, a file, or a test recorder can all subscribe.
type Sink interface {
	Emit(level Level, msg string)
}

// FuncSink adapts a function to the Sink interface.
type FuncSink func(level Level, msg string)

func (f FuncSink) Emit(level Level, msg string) { f(level, msg) }

// MultiSink fans events out to several sinks.
type MultiSink []Sink

func (m MultiSink) Emit(level Level, msg string) {
	for _, s := range m {
		s.Emit(level, msg)
	}
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(Level, string) {}

// FileSink appends timestamped lines to a log file.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
}

func NewFileSink(path string) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &FileSink{file: file}, nil
}

func (f *FileSink) Emit(level Level, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(f.file, "%s [%s] %s\n", timestamp, level, msg)
	f.file.Sync()
}

func (f *FileSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}

var (
	defaultMu   sync.RWMutex
	defaultSink Sink = NopSink{}
)

// SetDefault replaces the package-level sink, returning the previous one.
func SetDefault(sink Sink) Sink {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultSink
	if sink == nil {
		sink = NopSink{}
	}
	defaultSink = sink
	return prev
}

// Default returns the package-level sink.
func Default() Sink {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSink
}

func emit(level Level, format string, args ...interface{}) {
	Default().Emit(level, fmt.Sprintf(format, args...))
}

func LogDebug(format string, args ...interface{}) { emit(LevelDebug, format, args...) }

func LogInfo(format string, args ...interface{}) { emit(LevelInfo, format, args...) }

func LogError(format string, args ...interface{}) { emit(LevelError, format, args...) }
