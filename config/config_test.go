package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/daystram/chessrules/board"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chessrules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal("unexpected error:", err)
	}
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if cfg.FEN != board.DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", cfg.FEN, board.DefaultStartingPositionFEN)
	}
	if !cfg.Color || !cfg.Perft.Parallel || cfg.Log.Level != "info" {
		t.Errorf("unexpected defaults: got=%+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
  file: logs/chessrules.log
color: false
fen: 4k3/8/8/8/8/8/8/4K3 b - - 0 1
perft:
  parallel: false
  verbose: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	want := Config{
		Log:   LogConfig{Level: "debug", Format: "json", File: "logs/chessrules.log"},
		Color: false,
		FEN:   "4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		Perft: PerftConfig{Parallel: false, Verbose: true},
	}
	if *cfg != want {
		t.Errorf("unexpected config: got=%+v want=%+v", *cfg, want)
	}
	if opts := cfg.LogOptions(); opts.Level != "debug" || opts.Format != "json" || opts.File != "logs/chessrules.log" {
		t.Errorf("unexpected log options: got=%+v", opts)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\ncolor: true\n")
	t.Setenv("CHESSRULES_LOG_LEVEL", "warn")
	t.Setenv("CHESSRULES_LOG_FORMAT", "console")
	t.Setenv("CHESSRULES_LOG_FILE", "out.log")
	t.Setenv("CHESSRULES_COLOR", "false")
	t.Setenv("CHESSRULES_FEN", "8/8/8/8/8/8/8/8 w")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" || cfg.Log.File != "out.log" {
		t.Errorf("unexpected log config: got=%+v", cfg.Log)
	}
	if cfg.Color {
		t.Error("unexpected color enabled")
	}
	if cfg.FEN != "8/8/8/8/8/8/8/8 w" {
		t.Errorf("unexpected FEN: got=%s", cfg.FEN)
	}
}

func TestLoadEnvIgnoresBadBool(t *testing.T) {
	t.Setenv("CHESSRULES_COLOR", "sometimes")
	cfg, err := Load("")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !cfg.Color {
		t.Error("unexpected color disabled")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "log: [\n"},
		{name: "unknown level", content: "log:\n  level: trace\n"},
		{name: "unknown format", content: "log:\n  format: xml\n"},
		{name: "bad fen", content: "fen: rnbqkbnr/pppppppp\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected error: got=%v want=%v", err, os.ErrNotExist)
	}
}
