package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCLIFlagsPriority(t *testing.T) {
	t.Setenv("LINKVEIL_CONFIG", "/tmp/env.toml")

	opts, err := parseCLIFlags([]string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.configPath != "/tmp/env.toml" {
		t.Fatalf("environment variable should win over the default, got %s", opts.configPath)
	}

	opts, err = parseCLIFlags([]string{"--config", "/tmp/flag.toml"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.configPath != "/tmp/flag.toml" {
		t.Fatalf("flag should win over the environment, got %s", opts.configPath)
	}
}

func TestParseCLIFlagsDefaultPath(t *testing.T) {
	t.Setenv("LINKVEIL_CONFIG", "")

	opts, err := parseCLIFlags(nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.configPath != "config.toml" {
		t.Fatalf("expected default config.toml, got %s", opts.configPath)
	}
}

func TestRunCheckConfigSuccess(t *testing.T) {
	useBufferWriters(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("ListenPort = 9000\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if code := run(cliOptions{configPath: path, checkOnly: true}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunCheckConfigFailure(t *testing.T) {
	useBufferWriters(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("ListenPort = -4\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if code := run(cliOptions{configPath: path, checkOnly: true}); code == 0 {
		t.Fatalf("invalid config should produce a non-zero exit code")
	}
}

func TestRunVersionOutput(t *testing.T) {
	useBufferWriters(t)

	if code := run(cliOptions{showVersion: true}); code != 0 {
		t.Fatalf("version mode should exit cleanly, got %d", code)
	}
	if !strings.Contains(stdOut.(*bytes.Buffer).String(), "linkveil") {
		t.Fatalf("version output should identify linkveil")
	}
}
