// Package filter decides which command-line paths are read and how their
// contents are classified.
package filter

import (
	"fmt"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// Exclude matches paths against gitignore-style patterns.
// A nil *Exclude matches nothing.
type Exclude struct {
	layers []*ignore.GitIgnore
}

// NewExclude compiles patterns from file (if non-empty) and from the inline
// patterns. Unlike .gitignore discovery, a missing file is an error: the
// caller asked for it explicitly.
func NewExclude(file string, patterns []string) (*Exclude, error) {
	e := &Exclude{}
	if file != "" {
		parser, err := ignore.CompileIgnoreFile(file)
		if err != nil {
			return nil, fmt.Errorf("exclude file %s: %w", file, err)
		}
		e.layers = append(e.layers, parser)
	}
	if len(patterns) > 0 {
		e.layers = append(e.layers, ignore.CompileIgnoreLines(patterns...))
	}
	return e, nil
}

// Match reports whether path is excluded by any layer.
func (e *Exclude) Match(path string) bool {
	if e == nil {
		return false
	}
	checkPath := filepath.ToSlash(filepath.Clean(path))
	for _, layer := range e.layers {
		if layer.MatchesPath(checkPath) {
			return true
		}
	}
	return false
}

// Empty reports whether e has no patterns at all.
func (e *Exclude) Empty() bool {
	return e == nil || len(e.layers) == 0
}
