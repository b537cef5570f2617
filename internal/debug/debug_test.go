package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDisabled(t *testing.T) {
	resetForTest()

	if err := Init(false); err != nil {
		t.Fatalf("Init(false) failed: %v", err)
	}
	if Enabled() {
		t.Error("Enabled() should return false when initialized with false")
	}

	// No-ops, must not panic.
	Log("quiet message")
	Logf("quiet %s", "formatted")
}

func TestInitEnabledWritesLog(t *testing.T) {
	resetForTest()

	tmpDir := t.TempDir()
	origGetLogPath := getLogPath
	getLogPath = func() (string, error) {
		return filepath.Join(tmpDir, LogDirName, LogFileName), nil
	}
	t.Cleanup(func() {
		getLogPath = origGetLogPath
		Close()
		resetForTest()
	})

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	if !Enabled() {
		t.Error("Enabled() should return true when initialized with true")
	}

	Log("layout pass complete")
	Logf("positioned %d nodes", 7)

	content, err := os.ReadFile(filepath.Join(tmpDir, LogDirName, LogFileName))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	got := string(content)
	if !strings.Contains(got, "debug log started") {
		t.Error("log file should contain startup message")
	}
	if !strings.Contains(got, "layout pass complete") {
		t.Error("log file should contain Log output")
	}
	if !strings.Contains(got, "positioned 7 nodes") {
		t.Error("log file should contain Logf output")
	}
}

func TestInitTruncatesExistingLog(t *testing.T) {
	resetForTest()

	tmpDir := t.TempDir()
	origGetLogPath := getLogPath
	getLogPath = func() (string, error) {
		return filepath.Join(tmpDir, LogDirName, LogFileName), nil
	}
	t.Cleanup(func() {
		getLogPath = origGetLogPath
		Close()
		resetForTest()
	})

	logDir := filepath.Join(tmpDir, LogDirName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("failed to create log directory: %v", err)
	}
	logPath := filepath.Join(logDir, LogFileName)
	if err := os.WriteFile(logPath, []byte("stale content from previous run\n"), 0600); err != nil {
		t.Fatalf("failed to write pre-existing log: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "stale content") {
		t.Error("log file should have been truncated")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	resetForTest()

	tmpDir := t.TempDir()
	origGetLogPath := getLogPath
	getLogPath = func() (string, error) {
		return filepath.Join(tmpDir, LogDirName, LogFileName), nil
	}
	t.Cleanup(func() {
		getLogPath = origGetLogPath
		resetForTest()
	})

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}

	Close()
	Close()
}

func TestGetLogPath(t *testing.T) {
	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(LogDirName, LogFileName)) {
		t.Errorf("GetLogPath() = %q, want suffix %q", path, filepath.Join(LogDirName, LogFileName))
	}
}

// resetForTest resets the package state for testing.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}
