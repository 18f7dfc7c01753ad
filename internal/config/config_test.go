package config

import (
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	_ = os.Unsetenv("BOOK_ADDR")
	_ = os.Unsetenv("BOOK_LOG_LEVEL")
	_ = os.Unsetenv("BOOK_FEED_BUFFER")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Fatalf("expected default addr :9999, got %s", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.FeedBuffer != 64 {
		t.Fatalf("expected default feed buffer 64, got %d", cfg.FeedBuffer)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BOOK_ADDR", ":8081")
	t.Setenv("BOOK_LOG_LEVEL", "debug")
	t.Setenv("BOOK_FEED_BUFFER", "128")

	cfg := Load()
	if cfg.Addr != ":8081" {
		t.Fatalf("env override failed for addr, got %s", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override failed for log level, got %s", cfg.LogLevel)
	}
	if cfg.FeedBuffer != 128 {
		t.Fatalf("env override failed for feed buffer, got %d", cfg.FeedBuffer)
	}
}

func TestInvalidFeedBufferIgnored(t *testing.T) {
	t.Setenv("BOOK_FEED_BUFFER", "not-a-number")

	cfg := Load()
	if cfg.FeedBuffer != 64 {
		t.Fatalf("invalid feed buffer should keep default, got %d", cfg.FeedBuffer)
	}
}
