package config

import "context"

type cfgCtxKey struct{}
type workDirCtxKey struct{}

// WithConfig attaches the loaded configuration to the context.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, cfgCtxKey{}, cfg)
}

// FromContext retrieves the configuration from context, or Default()
// when none is attached.
func FromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(cfgCtxKey{}).(Config); ok {
		return cfg
	}
	return Default()
}

// WithWorkDir records the directory the command was invoked from.
// Tests use this to run commands against temp repositories without
// changing the process working directory.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirCtxKey{}, dir)
}

// WorkDirFromContext returns the recorded working directory, or "."
// when none is attached.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirCtxKey{}).(string); ok && dir != "" {
		return dir
	}
	return "."
}
