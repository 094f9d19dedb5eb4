// Package log provides context-aware diagnostic logging for wtm.
// All log output goes to stderr. Stdout is reserved for data output
// (paths, tables, JSON) and handled by the output package.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

type ctxKey struct{}

// Logger writes diagnostic output with verbose and quiet switches.
// Quiet wins over verbose.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a Logger writing to out.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, a ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, a...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(a ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, a...)
}

// Command logs a subprocess invocation when verbose. The returned
// func logs the command line with its duration once the command
// finishes.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := "$ " + name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d)
	}
}

// Debug writes a verbose-only message followed by key=value pairs.
// A dangling key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// IsVerbose reports whether verbose output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// WithLogger attaches a Logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the Logger from context.
// Returns a logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, false)
}
