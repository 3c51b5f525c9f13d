package timeline

const (
	defaultGap   = 8
	defaultStep  = 0.001
	defaultScale = 1
)

// Config holds the layout and sampling settings of a Track.
type Config struct {
	// Gap is the space left between neighbouring blocks.
	Gap float64
	// Step is the time resolution of the memoized table.
	Step float64
	// Scale converts layout units to display units.
	Scale float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Gap:   defaultGap,
		Step:  defaultStep,
		Scale: defaultScale,
	}
}

// WithGap sets the space between blocks. Negative values are ignored.
func WithGap(gap float64) Option {
	return func(cfg *Config) {
		if gap >= 0 {
			cfg.Gap = gap
		}
	}
}

// WithStep sets the table resolution. Non-positive values are ignored.
func WithStep(step float64) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.Step = step
		}
	}
}

// WithScale sets the display scale. Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(cfg *Config) {
		if scale > 0 {
			cfg.Scale = scale
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
