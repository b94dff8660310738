package project

import "log/slog"

// RunOptions is the process-level configuration surface (spec.md §4.7):
// trace on/off and its output path, a tick budget useful for tests that
// want to drive a bounded number of steps instead of running to
// completion, and the logger the scheduler and loader log through.
type RunOptions struct {
	logger     *slog.Logger
	tracePath  string
	tickBudget int
}

// RunOption configures a RunOptions value. Matches the teacher's
// functional-option / With... builder idiom.
type RunOption func(*RunOptions)

func defaultRunOptions() RunOptions {
	return RunOptions{logger: slog.Default()}
}

// WithLogger overrides the default slog.Default() logger. A nil l keeps
// the default.
func WithLogger(l *slog.Logger) RunOption {
	return func(o *RunOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTrace enables the CBOR event trace, writing it to path. An empty
// path (the default) disables tracing entirely.
func WithTrace(path string) RunOption {
	return func(o *RunOptions) { o.tracePath = path }
}

// WithTickBudget bounds Run to at most n scheduler ticks instead of
// running to quiescence — useful for tests exercising a partially-run
// graph. n <= 0 means unlimited (the default).
func WithTickBudget(n int) RunOption {
	return func(o *RunOptions) { o.tickBudget = n }
}
