package app

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/gogpu/halftone/internal/settings"
)

// Options is everything the command line can set besides the stored
// preferences, which live in a settings.Store.
type Options struct {
	Source string

	Scale     int
	Width     int
	Workers   int
	Precision int

	Preview  string
	GCode    bool
	GCodeOut string

	SettingsPath string
	SaveSettings bool

	LogLevel  string
	LogFormat string
	LogDir    string
	Lang      string

	Version bool
}

// settingFlags pairs each preference flag with its settings key.
var settingFlags = []struct {
	flag string
	key  string
}{
	{"step", settings.KeyStep},
	{"depth-pct", settings.KeyMaxCutDepthPct},
	{"tool-depth", settings.KeyFullToolDepth},
	{"tool-width", settings.KeyFullToolWidth},
	{"gap", settings.KeyMinDotGap},
	{"fast-z", settings.KeyFastZ},
	{"feed", settings.KeyFeed},
	{"speed", settings.KeySpeed},
	{"coolant", settings.KeyCoolant},
	{"preamble", settings.KeyPreamble},
}

// newFlagSet declares every flag on a fresh FlagSet. Preference flags
// carry no destination; bindSettings hands them to the settings store.
func newFlagSet(o *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("htcnc", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	d := settings.Default()
	fs.Int("step", d.Step, "source pixels between dot centers")
	fs.Int("depth-pct", d.MaxCutDepthPc, "max cut depth and width, percent of the full tool")
	fs.Float64("tool-depth", d.FullToolDepth, "depth the tool can cut")
	fs.Float64("tool-width", d.FullToolWidth, "tool width at full depth")
	fs.Float64("gap", d.MinDotGap, "minimum gap between dots")
	fs.Float64("fast-z", d.FastZ, "height where the tool can move quickly")
	fs.Float64("feed", d.Feed, "feed rate (F)")
	fs.Float64("speed", d.Speed, "spindle speed (S)")
	fs.Bool("coolant", d.Coolant, "turn coolant on while cutting (M08/M09)")
	fs.String("preamble", `G20\nG90`, `G-code preamble; "\n" separates lines`)

	fs.IntVar(&o.Scale, "scale", 1, "preview zoom factor")
	fs.IntVar(&o.Width, "width", 0, "resample the source to this many pixels wide first")
	fs.IntVar(&o.Workers, "workers", 1, "rows rendered in parallel (0 = one per CPU)")
	fs.IntVar(&o.Precision, "precision", 0, "fractional digits in G-code numbers (0 = 4)")

	fs.StringVar(&o.Preview, "preview", "", "write the halftone preview PNG here")
	fs.BoolVarP(&o.GCode, "generate", "g", false, "generate G-code next to the source image")
	fs.StringVar(&o.GCodeOut, "gcode", "", "generate G-code into this file")

	fs.StringVar(&o.SettingsPath, "settings", "", "settings file (default: per-user config dir)")
	fs.BoolVar(&o.SaveSettings, "save-settings", false, "store the effective tool settings")

	fs.StringVar(&o.LogLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&o.LogFormat, "log-format", "auto", "text, json or auto (text on a terminal)")
	fs.StringVar(&o.LogDir, "log-dir", "", "also write the log to a timestamped file in this directory")
	fs.StringVar(&o.Lang, "lang", "", "language for the summary (default from $LANG)")

	fs.BoolVar(&o.Version, "version", false, "print the version and exit")
	return fs
}

// bindSettings makes every preference flag the user sets override the
// stored value in s.
func bindSettings(fs *pflag.FlagSet, s *settings.Store) error {
	for _, b := range settingFlags {
		if err := s.BindFlag(b.key, fs.Lookup(b.flag)); err != nil {
			return err
		}
	}
	return nil
}

// usage writes the flag summary to w.
func usage(w io.Writer, fs *pflag.FlagSet) {
	_, _ = fmt.Fprintln(w, "usage: htcnc [flags] image")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Converts an image into a halftone preview and dot-cutting G-code.")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, fs.FlagUsages())
}
