package logger

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("", "")
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}

	// Logging must never panic regardless of level
	l.Info("Test info message", "TEST")
	l.Warn("Test warning message", "TEST")
	l.Debug("Test debug message", "TEST")
	l.System("Test system message", "TEST")
	l.Success("Test success message", "TEST")

	l.Close()
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLogLevelColor(t *testing.T) {
	levels := []LogLevel{
		LevelCritical,
		LevelError,
		LevelWarn,
		LevelSuccess,
		LevelInfo,
		LevelDebug,
		LevelSystem,
	}

	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			if level.Color() == "" {
				t.Error("Expected color to be non-empty")
			}
		})
	}
}

func TestLogLevelEmbedColor(t *testing.T) {
	tests := []struct {
		level LogLevel
		color int
	}{
		{LevelCritical, 0xED4245},
		{LevelError, 0xED4245},
		{LevelWarn, 0xFEE75C},
		{LevelSuccess, 0x57F287},
		{LevelInfo, 0x5865F2},
		{LevelDebug, 0x9B59B6},
		{LevelSystem, 0x95A5A6},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.EmbedColor(); got != tt.color {
				t.Errorf("LogLevel.EmbedColor() = %v, want %v", got, tt.color)
			}
		})
	}
}

func TestLogFileCreation(t *testing.T) {
	logsDir := filepath.Join(".", "logs")
	os.RemoveAll(logsDir)

	l := NewLogger("", "")
	defer l.Close()

	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	combinedLog := filepath.Join(logsDir, "combined.log")
	errorLog := filepath.Join(logsDir, "error.log")

	if _, err := os.Stat(combinedLog); os.IsNotExist(err) {
		t.Error("Expected combined.log to be created")
	}

	if _, err := os.Stat(errorLog); os.IsNotExist(err) {
		t.Error("Expected error.log to be created")
	}
}

func TestGlobalLoggerInit(t *testing.T) {
	logger = nil
	once = sync.Once{}

	l := Init("", "")
	if l == nil {
		t.Fatal("Expected Init to return a logger")
	}

	// Calling Init again should return the same logger
	l2 := Init("different", "different")
	if l != l2 {
		t.Error("Expected Init to return the same logger on subsequent calls")
	}

	l3 := Get()
	if l != l3 {
		t.Error("Expected Get to return the same logger")
	}

	l.Close()
}
