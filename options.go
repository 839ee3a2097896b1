package halftone

import "log/slog"

// Option configures a Halftoner during creation.
// Use functional options to customize Halftoner behavior.
//
// Example:
//
//	// Preview only, no logging
//	h := halftone.New()
//
//	// Preview and G-code, rows rendered on four goroutines
//	h := halftone.New(halftone.WithGCode(true), halftone.WithWorkers(4))
type Option func(*options)

// options holds optional configuration for Halftoner creation.
type options struct {
	gcode   bool
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the default halftoner options.
func defaultOptions() options {
	return options{
		gcode:   false,
		workers: 1,
		logger:  nil, // Will be set to a discarding logger if nil
	}
}

// WithGCode enables toolpath generation.
//
// Toolpath generation is off by default: interactive callers recompute the
// preview on every parameter change and only need the program when the
// user asks to save it.
func WithGCode(enabled bool) Option {
	return func(o *options) {
		o.gcode = enabled
	}
}

// WithWorkers sets the number of goroutines rows are rendered on.
// Values below 1 select one worker per CPU (GOMAXPROCS). Output is
// byte-identical for any worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger the halftoner reports to.
// Pass nil to discard log output (the default).
//
// Example:
//
//	h := halftone.New(halftone.WithLogger(slog.New(
//	    slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
//	)))
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
