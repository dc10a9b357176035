package codewheel

import "log/slog"

// Option configures a Generator.
//
// Example:
//
//	g := codewheel.NewGenerator(
//		codewheel.WithBackend("raster"),
//		codewheel.WithLogger(slog.Default()),
//	)
type Option func(*options)

type options struct {
	pageWidth  float64
	pageHeight float64
	backend    string
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		pageWidth:  A4Width,
		pageHeight: A4Height,
		backend:    "svg",
	}
}

// WithPageSize sets the page canvas size in millimetres. The default is A4
// portrait. Non-positive sizes are ignored.
func WithPageSize(width, height float64) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.pageWidth = width
			o.pageHeight = height
		}
	}
}

// WithBackend selects the registered recording backend used to write
// documents. The default is "svg". The backend package must be imported.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithLogger sets the logger used by the Generator. Without it the
// package-wide logger from Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
