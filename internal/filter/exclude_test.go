package filter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExclude_File(t *testing.T) {
	dir := t.TempDir()
	excludeFile := filepath.Join(dir, ".goheadignore")
	if err := os.WriteFile(excludeFile, []byte("*.log\n# comment\n!important.log\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e, err := NewExclude(excludeFile, nil)
	if err != nil {
		t.Fatalf("NewExclude() error: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"matches glob", "app.log", true},
		{"matches nested", "var/app.log", true},
		{"no match", "app.txt", false},
		{"negation", "important.log", false},
		{"uncleaned path", "./logs/../app.log", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestExclude_InlinePatterns(t *testing.T) {
	e, err := NewExclude("", []string{"*.bin", "secrets/"})
	if err != nil {
		t.Fatalf("NewExclude() error: %v", err)
	}
	if !e.Match("build/out.bin") {
		t.Error("expected *.bin to match build/out.bin")
	}
	if !e.Match("secrets/key.pem") {
		t.Error("expected secrets/ to match files beneath it")
	}
	if e.Match("README.md") {
		t.Error("expected README.md to not be excluded")
	}
}

func TestExclude_MissingFile(t *testing.T) {
	_, err := NewExclude("/nonexistent/.goheadignore", nil)
	if err == nil {
		t.Error("expected error for missing exclude file")
	}
}

func TestExclude_Nil(t *testing.T) {
	var e *Exclude
	if e.Match("anything.txt") {
		t.Error("nil Exclude matched a path")
	}
	if !e.Empty() {
		t.Error("nil Exclude is not Empty")
	}

	e, err := NewExclude("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !e.Empty() || e.Match("x") {
		t.Error("Exclude with no patterns should match nothing")
	}
}
