package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUninitializedLoggerIsSafe(t *testing.T) {
	// The package-level default must accept logging before Init runs.
	if Log == nil || Sugar == nil {
		t.Fatal("package defaults should be non-nil no-op loggers")
	}
	Info("before init")
	Debug("before init")
	Sync()
}

func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		want     []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			rot := DefaultRotation()
			rot.Compress = false

			if err := InitWithRotation(tt.level, logFile, rot, false); err != nil {
				t.Fatalf("init: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("reading log file: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(content), want) {
					t.Errorf("level %s: expected %s in output", tt.level, want)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(string(content), exc) {
					t.Errorf("level %s: unexpected %s in output", tt.level, exc)
				}
			}
		})
	}
}

func TestRotationKeepsBackups(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "session.log")

	rot := Rotation{MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1, Compress: false}
	if err := InitWithRotation("debug", logFile, rot, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	// Write past 1MB so lumberjack rotates at least once.
	padding := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("entry %d: %s", i, padding)
	}
	Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("current log file missing: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("reading temp dir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		name := e.Name()
		if name != "session.log" && strings.HasPrefix(name, "session") && strings.HasSuffix(name, ".log") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Error("expected at least one rotated backup file")
	}
}

func TestDefaultRotation(t *testing.T) {
	rot := DefaultRotation()
	if rot.MaxSizeMB <= 0 || rot.MaxBackups <= 0 || rot.MaxAgeDays <= 0 {
		t.Errorf("rotation defaults must be positive: %+v", rot)
	}
	if !rot.Compress {
		t.Error("expected backups to be compressed by default")
	}
}
