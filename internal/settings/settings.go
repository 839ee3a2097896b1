// Package settings persists the halftone wizard's preferences between runs.
//
// Preferences are key/value pairs grouped by section ("halftone",
// "g_code", "tool"). A Store keeps them in a viper registry: built-in
// defaults at the bottom, the settings file above them, and command-line
// flags bound with BindFlag on top. The file is JSON with one object per
// section.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/halftone"
)

// Organization and application names used to build the default path.
const (
	Organization = "WhirlingChair"
	Application  = "CNC Halftone Wizard"
)

// fileName is the settings file inside the application directory.
const fileName = "settings.json"

// Setting keys.
const (
	KeyStep           = "halftone.source_pixel_step"
	KeyMinDotGap      = "halftone.min_dot_gap"
	KeyMaxCutDepthPct = "halftone.max_cut_depth_pct"
	KeyPreamble       = "g_code.preamble"
	KeyFeed           = "tool.feed"
	KeySpeed          = "tool.speed"
	KeyFastZ          = "tool.fast_z"
	KeyCoolant        = "tool.coolant"
	KeyFullToolDepth  = "tool.full_tool_depth"
	KeyFullToolWidth  = "tool.full_tool_width"
)

// ErrNoFile is returned by Save when the Store has no file path.
var ErrNoFile = errors.New("settings: no settings file")

// Settings are the stored preferences.
type Settings struct {
	Step          int
	MinDotGap     float64
	MaxCutDepthPc int

	// Preamble is copied into the G-code after the header comments.
	Preamble string

	Feed          float64
	Speed         float64
	FastZ         float64
	Coolant       bool
	FullToolDepth float64
	FullToolWidth float64
}

// Default returns the preferences used before anything has been saved:
// a 60 degree quarter-inch V bit cutting at most half its depth.
func Default() Settings {
	return Settings{
		Step:          4,
		MinDotGap:     0.01,
		MaxCutDepthPc: 50,
		Preamble:      "G20\nG90",
		Feed:          10,
		Speed:         10000,
		FastZ:         0.1,
		FullToolDepth: 0.2165,
		FullToolWidth: 0.25,
	}
}

// Params converts the preferences to halftone parameters.
func (s Settings) Params() halftone.Params {
	return halftone.Params{
		Step:          s.Step,
		FullToolDepth: s.FullToolDepth,
		FullToolWidth: s.FullToolWidth,
		MaxCutPercent: float64(s.MaxCutDepthPc) / 100.0,
		MinDotGap:     s.MinDotGap,
		FastZ:         s.FastZ,
	}
}

// values maps every key to its field in s.
func (s Settings) values() map[string]any {
	return map[string]any{
		KeyStep:           s.Step,
		KeyMinDotGap:      s.MinDotGap,
		KeyMaxCutDepthPct: s.MaxCutDepthPc,
		KeyPreamble:       s.Preamble,
		KeyFeed:           s.Feed,
		KeySpeed:          s.Speed,
		KeyFastZ:          s.FastZ,
		KeyCoolant:        s.Coolant,
		KeyFullToolDepth:  s.FullToolDepth,
		KeyFullToolWidth:  s.FullToolWidth,
	}
}

// DefaultPath returns the per-user settings file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: %w", err)
	}
	return filepath.Join(dir, Organization, Application, fileName), nil
}

// Store is a layered view of the preferences backed by one file.
// An empty path gives a Store with defaults only that cannot be saved.
type Store struct {
	v    *viper.Viper
	path string
}

// NewStore returns a Store for path with every key set to its default.
// Nothing is read until Load.
func NewStore(path string) *Store {
	v := viper.New()
	v.SetConfigType("json")
	if path != "" {
		v.SetConfigFile(filepath.Clean(path))
	}
	for key, val := range Default().values() {
		v.SetDefault(key, val)
	}
	return &Store{v: v, path: path}
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file is not an error: every key
// keeps its default. Keys absent from the file keep their defaults too.
// On a parse error the Store is left unchanged.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}

	err := s.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil, errors.Is(err, fs.ErrNotExist), errors.As(err, &notFound):
		return nil
	default:
		return fmt.Errorf("settings: read %s: %w", s.path, err)
	}
}

// BindFlag makes f override key once it has been set on the command line.
// Flags left at their default do not mask stored values.
func (s *Store) BindFlag(key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("settings: no flag for %s", key)
	}
	if err := s.v.BindPFlag(key, f); err != nil {
		return fmt.Errorf("settings: bind %s: %w", key, err)
	}
	return nil
}

// Set overrides every key with the fields of p.
func (s *Store) Set(p Settings) {
	for key, val := range p.values() {
		s.v.Set(key, val)
	}
}

// Settings returns the effective preferences. A literal `\n` in the
// preamble, as typed on a command line, separates lines.
func (s *Store) Settings() Settings {
	v := s.v
	return Settings{
		Step:          v.GetInt(KeyStep),
		MinDotGap:     v.GetFloat64(KeyMinDotGap),
		MaxCutDepthPc: v.GetInt(KeyMaxCutDepthPct),
		Preamble:      strings.ReplaceAll(v.GetString(KeyPreamble), `\n`, "\n"),
		Feed:          v.GetFloat64(KeyFeed),
		Speed:         v.GetFloat64(KeySpeed),
		FastZ:         v.GetFloat64(KeyFastZ),
		Coolant:       v.GetBool(KeyCoolant),
		FullToolDepth: v.GetFloat64(KeyFullToolDepth),
		FullToolWidth: v.GetFloat64(KeyFullToolWidth),
	}
}

// Save writes the effective preferences to the settings file, creating
// its directory if needed. Keys the file held that this package does not
// know about are written back unchanged.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoFile
	}
	s.Set(s.Settings())

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := s.v.WriteConfigAs(filepath.Clean(s.path)); err != nil {
		return fmt.Errorf("settings: write %s: %w", s.path, err)
	}
	return nil
}

// Load returns the preferences stored at path. A missing file yields
// Default(); a corrupt one yields Default() and an error.
func Load(path string) (Settings, error) {
	s := NewStore(path)
	err := s.Load()
	return s.Settings(), err
}

// Save stores p at path.
func Save(path string, p Settings) error {
	s := NewStore(path)
	s.Set(p)
	return s.Save()
}
