package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"
)

// logFileName returns the name of the log copy written at t.
func logFileName(t time.Time) string {
	return "CNCHalftonerLog_" + t.Format("2006_01_02_1504") + ".txt"
}

// parseLevel maps a -log-level value to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid -log-level %q", s)
	}
	return l, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newLogger builds the application logger writing to stderr and, if logDir
// is set, to a timestamped copy there. The returned close function must
// be called before exit.
func newLogger(stderr io.Writer, level, format, logDir string, now time.Time) (*slog.Logger, func() error, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	switch format {
	case "auto":
		format = "json"
		if isTerminal(stderr) {
			format = "text"
		}
	case "text", "json":
	default:
		return nil, nil, fmt.Errorf("invalid -log-format %q", format)
	}

	w := stderr
	closeFn := func() error { return nil }
	if logDir != "" {
		path := filepath.Join(logDir, logFileName(now))
		f, err := os.Create(filepath.Clean(path))
		if err != nil {
			return nil, nil, fmt.Errorf("couldn't write log data to %s: %w", path, err)
		}
		w = io.MultiWriter(stderr, f)
		closeFn = f.Close
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h), closeFn, nil
}
