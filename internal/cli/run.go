package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/gohead/internal/filter"
	"github.com/dl/gohead/internal/output"
	"github.com/dl/gohead/internal/scheduler"
)

// Run executes gohead with the given config.
// Returns exit code: 0 = every path read, 1 = some path failed, 2 = error.
func Run(cfg Config) int {
	return run(cfg, output.NewWriter(), os.Stderr, output.StdoutIsTerminal())
}

func run(cfg Config, w *output.Writer, stderr io.Writer, stdoutIsTTY bool) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Level:  cfg.logLevel(),
		Prefix: "gohead",
	})

	exclude, err := filter.NewExclude(cfg.ExcludeFile, cfg.Excludes)
	if err != nil {
		logger.Error("invalid exclude patterns", "err", err)
		return 2
	}

	paths := cfg.Paths
	if len(paths) == 0 {
		paths = []string{scheduler.StdinPath}
	}
	paths = selectPaths(paths, exclude, logger)

	// Determine color mode
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
		output.ForceColor()
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = stdoutIsTTY
	}

	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		var styles *output.Styles
		if useColor {
			s := output.NewStyles()
			styles = &s
		}
		formatter = output.NewTextFormatter(styles, cfg.Quiet, cfg.Verbose, cfg.Text)
	}

	pathCh := make(chan string, len(paths))
	for _, p := range paths {
		pathCh <- p
	}
	close(pathCh)

	sched := scheduler.New(cfg.Workers, cfg.Bytes)
	resultCh := sched.Run(pathCh)

	failed := false
	ow := output.NewOrderedWriter(w, formatter, len(paths) > 1)
	err = ow.WriteOrdered(resultCh, func(r output.Result) {
		switch {
		case r.Err != nil:
			failed = true
			logger.Warn("cannot open", "path", r.Path, "err", errors.Unwrap(r.Err))
		case r.ReadErr != nil:
			failed = true
			logger.Warn("read error", "path", r.Path, "bytes", len(r.Data), "err", r.ReadErr)
		default:
			logger.Debug("read", "path", r.Path, "bytes", len(r.Data), "binary", r.Binary)
		}
	})
	if err != nil {
		logger.Error("write failed", "err", err)
		return 2
	}

	if failed {
		return 1
	}
	return 0
}

// selectPaths drops excluded paths. Standard input is never excluded.
func selectPaths(paths []string, exclude *filter.Exclude, logger *log.Logger) []string {
	if exclude.Empty() {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != scheduler.StdinPath && exclude.Match(p) {
			logger.Debug("excluded", "path", p)
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
