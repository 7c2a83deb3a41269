package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SURVIVAL_TEST_VALUE", "hello")
	if got := GetEnv("SURVIVAL_TEST_VALUE", "fallback"); got != "hello" {
		t.Errorf("GetEnv = %q, want hello", got)
	}
	if got := GetEnv("SURVIVAL_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv missing = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SURVIVAL_TEST_FPS", "30")
	t.Setenv("SURVIVAL_TEST_BAD", "fast")

	if got := GetEnvInt("SURVIVAL_TEST_FPS", 60); got != 30 {
		t.Errorf("GetEnvInt = %d, want 30", got)
	}
	if got := GetEnvInt("SURVIVAL_TEST_BAD", 60); got != 60 {
		t.Errorf("GetEnvInt malformed = %d, want 60", got)
	}
	if got := GetEnvInt("SURVIVAL_TEST_MISSING", 60); got != 60 {
		t.Errorf("GetEnvInt missing = %d, want 60", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SURVIVAL_TEST_PERIOD", "750ms")
	t.Setenv("SURVIVAL_TEST_BAD", "soon")

	if got := GetEnvDuration("SURVIVAL_TEST_PERIOD", time.Second); got != 750*time.Millisecond {
		t.Errorf("GetEnvDuration = %v, want 750ms", got)
	}
	if got := GetEnvDuration("SURVIVAL_TEST_BAD", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration malformed = %v, want 1s", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("SURVIVAL_TEST_FROM_FILE=file\nSURVIVAL_TEST_PRESET=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SURVIVAL_TEST_PRESET", "env")
	t.Cleanup(func() { os.Unsetenv("SURVIVAL_TEST_FROM_FILE") })

	if err := Load(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("SURVIVAL_TEST_FROM_FILE"); got != "file" {
		t.Errorf("SURVIVAL_TEST_FROM_FILE = %q, want file", got)
	}
	if got := os.Getenv("SURVIVAL_TEST_PRESET"); got != "env" {
		t.Errorf("SURVIVAL_TEST_PRESET = %q, want env (environment wins)", got)
	}
}

func TestLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	var buf bytes.Buffer
	logger := Logger(&buf)
	if logger.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.GetLevel())
	}
	logger.Debug("hello", "k", 1)
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output %q missing message", buf.String())
	}

	t.Setenv("LOG_LEVEL", "loud")
	if got := Logger(&buf).GetLevel(); got != log.InfoLevel {
		t.Errorf("level for bad LOG_LEVEL = %v, want info", got)
	}
}

func TestLoggerAfterLoadUsesFileLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	var buf bytes.Buffer
	if got := Logger(&buf).GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug from the env file", got)
	}
}
