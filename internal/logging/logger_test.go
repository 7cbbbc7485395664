package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimterm.log")

	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	Info("directory loaded", zap.Int("items", 3))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "directory loaded") {
		t.Errorf("log file = %q, want it to contain the message", data)
	}
}

func TestInitializeFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(LogLevelEnvVar, "warn")
	t.Setenv(LogFileEnvVar, path)

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"chatty", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogRawBytes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogRawBytes("unknown input", []byte{0x1b, '[', 'Z'})

	entries := logs.FilterMessage("unknown input").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["hex"] != "1b5b5a" {
		t.Errorf("hex = %v, want 1b5b5a", fields["hex"])
	}
	if fields["ascii"] != ".[Z" {
		t.Errorf("ascii = %v, want .[Z", fields["ascii"])
	}
}

func TestLogRawBytesSkippedAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogRawBytes("unknown input", []byte{0x00})

	if logs.Len() != 0 {
		t.Errorf("got %d entries, want none at info level", logs.Len())
	}
}

func TestDumpTruncation(t *testing.T) {
	data := make([]byte, maxDumpBytes+10)
	if got := hexDump(data); !strings.HasSuffix(got, "...") || len(got) != maxDumpBytes*2+3 {
		t.Errorf("hexDump() length = %d, want %d with ellipsis", len(got), maxDumpBytes*2+3)
	}
	if got := asciiDump(data); len(got) != maxDumpBytes {
		t.Errorf("asciiDump() length = %d, want %d", len(got), maxDumpBytes)
	}
	if hexDump(nil) != "" || asciiDump(nil) != "" {
		t.Error("dumps of empty input should be empty")
	}
}
