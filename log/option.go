package log

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLevel sets the minimum level of messages to emit.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout sets the timestamp layout. Named layouts from the [time]
// package (such as "RFC3339Nano") are recognized; any other string is used
// as a literal layout.
func WithTimeLayout(layout string) Option {
	return func(cfg config) config {
		if layout != "" {
			cfg.timeLayout = layout
		}

		return cfg
	}
}

// WithCaller includes source file and line information in each record.
func WithCaller(caller bool) Option {
	return func(cfg config) config {
		cfg.caller = caller

		return cfg
	}
}

// WithPretty enables colorized output for the text format.
func WithPretty(pretty bool) Option {
	return func(cfg config) config {
		cfg.pretty = pretty

		return cfg
	}
}
