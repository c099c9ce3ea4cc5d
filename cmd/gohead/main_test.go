package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dl/gohead/internal/cli"
)

func captureConfig(t *testing.T, args ...string) (cli.Config, int, string) {
	t.Helper()
	var (
		got    cli.Config
		stderr bytes.Buffer
	)
	code := execute(args, &stderr, func(cfg cli.Config) int {
		got = cfg
		return 0
	})
	return got, code, stderr.String()
}

func TestExecute_Defaults(t *testing.T) {
	cfg, code, _ := captureConfig(t, "a.txt", "-")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if cfg.Bytes != cli.DefaultBytes {
		t.Errorf("Bytes = %d, want %d", cfg.Bytes, cli.DefaultBytes)
	}
	if cfg.Color != cli.ColorAuto {
		t.Errorf("Color = %v, want ColorAuto", cfg.Color)
	}
	if len(cfg.Paths) != 2 || cfg.Paths[0] != "a.txt" || cfg.Paths[1] != "-" {
		t.Errorf("Paths = %q, want [a.txt -]", cfg.Paths)
	}
}

func TestExecute_Flags(t *testing.T) {
	cfg, code, _ := captureConfig(t,
		"-c", "16", "-q", "--json", "--color", "never", "-j", "4", "-a",
		"--exclude-from", "ignore", "-e", "*.log", "-e", "a,b", "--log-level", "debug", "f")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if cfg.Bytes != 16 || !cfg.Quiet || !cfg.JSONOutput || cfg.Color != cli.ColorNever {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Workers != 4 || !cfg.Text || cfg.ExcludeFile != "ignore" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	// StringArray keeps commas inside a single pattern.
	if len(cfg.Excludes) != 2 || cfg.Excludes[1] != "a,b" {
		t.Errorf("Excludes = %q, want [*.log a,b]", cfg.Excludes)
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad int", []string{"-c", "many"}, "invalid argument"},
		{"bad color", []string{"--color", "sometimes"}, "invalid color mode"},
		{"negative bytes", []string{"-c", "-1"}, "invalid byte count"},
		{"quiet and verbose", []string{"-q", "-v"}, "cannot use -q"},
		{"unknown flag", []string{"--nope"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code, stderr := captureConfig(t, tt.args...)
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.want)
			}
		})
	}
}
