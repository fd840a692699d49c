package logging

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/linkveil/linkveil/internal/config"
)

func TestInitLoggerDefaultsToStdout(t *testing.T) {
	logger, err := InitLogger(&config.Config{LogLevel: "info"})
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if logger.Out != os.Stdout {
		t.Fatalf("expected stdout output when no file is configured")
	}
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %v", logger.GetLevel())
	}
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := InitLogger(&config.Config{LogLevel: "chatty"}); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestInitLoggerWritesToConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := InitLogger(&config.Config{
		LogLevel:    "debug",
		LogFilePath: dir + "/nested/proxy.log",
		LogMaxSize:  1,
	})
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if logger.Out == os.Stdout {
		t.Fatalf("expected rotating file writer, got stdout")
	}
}
