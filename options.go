package spreadsheet

import "log/slog"

// Option configures a Sheet at construction time.
type Option func(*Sheet)

// WithMaxRows overrides the default row bound (16384). Mostly useful in
// tests that want a small sheet so bounds violations are easy to trigger.
func WithMaxRows(n int) Option {
	return func(s *Sheet) { s.maxRows = n }
}

// WithMaxCols overrides the default column bound (16384).
func WithMaxCols(n int) Option {
	return func(s *Sheet) { s.maxCols = n }
}

// WithLogger attaches a logger used for Debug-level diagnostics (rejected
// formulas, detected cycles). A nil logger disables diagnostics; this is
// also the default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sheet) { s.logger = logger }
}
