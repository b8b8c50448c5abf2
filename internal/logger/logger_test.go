package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initTestLogger(t *testing.T, verbose bool) (*bytes.Buffer, string) {
	t.Helper()
	var console bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "test.log")
	if err := Init(&console, logPath, verbose); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() {
		Close()
		globalLogger = nil
	})
	return &console, logPath
}

// TestInfoGoesToConsoleAndFile tests the dual-output contract
func TestInfoGoesToConsoleAndFile(t *testing.T) {
	console, logPath := initTestLogger(t, false)

	Info("processing %d classes", 3)

	if !strings.Contains(console.String(), "processing 3 classes") {
		t.Errorf("INFO missing from console: %q", console.String())
	}

	fileContent, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(fileContent), "[INFO] processing 3 classes") {
		t.Errorf("INFO missing from log file: %q", fileContent)
	}
}

// TestDebugFileOnlyUnlessVerbose tests DEBUG routing
func TestDebugFileOnlyUnlessVerbose(t *testing.T) {
	console, logPath := initTestLogger(t, false)

	Debug("cache hit for %s", "Product")

	if strings.Contains(console.String(), "cache hit") {
		t.Error("DEBUG leaked to console without verbose")
	}

	fileContent, _ := os.ReadFile(logPath)
	if !strings.Contains(string(fileContent), "[DEBUG] cache hit for Product") {
		t.Errorf("DEBUG missing from log file: %q", fileContent)
	}
}

// TestDebugConsoleWhenVerbose tests the verbose switch
func TestDebugConsoleWhenVerbose(t *testing.T) {
	console, _ := initTestLogger(t, true)

	if !IsVerbose() {
		t.Error("IsVerbose should report true")
	}

	Debug("verbose message")
	if !strings.Contains(console.String(), "[DEBUG] verbose message") {
		t.Errorf("DEBUG missing from console in verbose mode: %q", console.String())
	}
}

// TestLogSkippedMember tests the skip audit line format (file only)
func TestLogSkippedMember(t *testing.T) {
	console, logPath := initTestLogger(t, false)

	LogSkippedMember("MyShop.Models.Product", "CreatedAt", "audit/version field name (createdat)")

	if console.Len() != 0 {
		t.Errorf("Skip audit leaked to console: %q", console.String())
	}

	fileContent, _ := os.ReadFile(logPath)
	want := "[SKIP] Type: MyShop.Models.Product, Member: CreatedAt, Reason: audit/version field name (createdat)"
	if !strings.Contains(string(fileContent), want) {
		t.Errorf("Skip audit line wrong, log file: %q", fileContent)
	}

	t.Logf("✅ Skip decisions are auditable in the log file")
}

// TestUninitializedLoggerIsSafe tests the nil-logger fallbacks
func TestUninitializedLoggerIsSafe(t *testing.T) {
	globalLogger = nil

	// None of these may panic
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	LogSkippedMember("T", "M", "r")

	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should be empty when uninitialized")
	}
	if IsVerbose() {
		t.Error("IsVerbose should be false when uninitialized")
	}
}
