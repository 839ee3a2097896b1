// Package app implements the htcnc command.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/gogpu/halftone"
	"github.com/gogpu/halftone/gcode"
	"github.com/gogpu/halftone/internal/image"
	"github.com/gogpu/halftone/internal/settings"
)

// Version is the program version.
const Version = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errOverwriteSource is returned when the G-code output would replace the
// source image.
var errOverwriteSource = errors.New("output would overwrite the source image")

// now is the clock used for log names and G-code timestamps.
var now = time.Now

// Run executes htcnc with argv (without the program name) and returns the
// process exit code. Flags may appear before or after the image name.
func Run(argv []string, stdout, stderr io.Writer) int {
	var opts Options
	fs := newFlagSet(&opts)

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(stdout, fs)
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, "htcnc:", err)
		usage(stderr, fs)
		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "htcnc version %s\n", Version)
		return exitOK
	}
	if fs.NArg() != 1 {
		_, _ = fmt.Fprintln(stderr, "htcnc: expected exactly one source image")
		usage(stderr, fs)
		return exitUsage
	}
	opts.Source = fs.Arg(0)

	start := now()
	log, closeLog, err := newLogger(stderr, opts.LogLevel, opts.LogFormat, opts.LogDir, start)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "htcnc:", err)
		return exitUsage
	}
	defer func() { _ = closeLog() }()

	log.Info(fmt.Sprintf("Greets from The CNC Halftone Wizard, version %s.", Version))

	if opts.SettingsPath == "" {
		if opts.SettingsPath, err = settings.DefaultPath(); err != nil {
			log.Warn("app: no settings directory", "err", err)
		}
	}
	store := settings.NewStore(opts.SettingsPath)
	if err := store.Load(); err != nil {
		log.Warn("app: using default settings", "err", err)
	}
	if err := bindSettings(fs, store); err != nil {
		log.Error("app: failed", "err", err)
		return exitError
	}

	if opts.GCodeOut != "" {
		opts.GCode = true
	}
	if opts.GCode && opts.GCodeOut == "" {
		opts.GCodeOut = defaultGCodePath(opts.Source)
	}
	if opts.GCode && samePath(opts.GCodeOut, opts.Source) {
		log.Error("app: failed", "source", opts.Source,
			"err", fmt.Errorf("%w: %s", errOverwriteSource, opts.GCodeOut))
		return exitError
	}

	if err := run(&opts, store, stdout, log); err != nil {
		log.Error("app: failed", "source", opts.Source, "err", err)
		return exitError
	}
	return exitOK
}

// run does the work once options are settled.
func run(opts *Options, store *settings.Store, stdout io.Writer, log *slog.Logger) error {
	src, format, err := image.Load(opts.Source)
	if err != nil {
		return err
	}
	log.Debug("app: loaded source", "path", opts.Source, "format", format,
		"width", src.Width(), "height", src.Height())

	if opts.Width > 0 && opts.Width != src.Width() {
		if src, err = src.Resize(opts.Width); err != nil {
			return err
		}
		log.Debug("app: resampled source", "width", src.Width(), "height", src.Height())
	}

	prefs := store.Settings()
	params := prefs.Params()
	h := halftone.New(
		halftone.WithGCode(opts.GCode),
		halftone.WithWorkers(opts.Workers),
		halftone.WithLogger(log),
	)
	res, err := h.Render(src.ToGray(), opts.Scale, params)
	if err != nil {
		return err
	}

	if opts.Preview != "" {
		if err := res.Preview.SavePNG(opts.Preview); err != nil {
			return err
		}
		log.Info("app: preview written", "path", opts.Preview)
	}

	if opts.GCode {
		env := gcode.Envelope{
			Generated: now(),
			Preamble:  prefs.Preamble,
			Feed:      prefs.Feed,
			Speed:     prefs.Speed,
			Coolant:   prefs.Coolant,
		}
		if err := env.WriteFile(opts.GCodeOut, res.Program, gcode.Formatter{Precision: opts.Precision}); err != nil {
			return err
		}
		log.Info(fmt.Sprintf("G code written to %s.", opts.GCodeOut))
	}

	if err := writeSummary(stdout, languageTag(opts.Lang), filepath.Base(opts.Source),
		src.Width(), src.Height(), params, res); err != nil {
		return err
	}

	if opts.SaveSettings && store.Path() != "" {
		if err := store.Save(); err != nil {
			return err
		}
		log.Debug("app: settings saved", "path", store.Path())
	}
	return nil
}

// defaultGCodePath returns the source path with its extension replaced by
// .ngc.
func defaultGCodePath(source string) string {
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + ".ngc"
}

// samePath reports whether a and b name the same file.
func samePath(a, b string) bool {
	if fa, err := os.Stat(a); err == nil {
		if fb, err := os.Stat(b); err == nil {
			return os.SameFile(fa, fb)
		}
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
