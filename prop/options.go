package prop

// defaultMaxIterations is PLResolution's default iteration bound.
const defaultMaxIterations = 1000

type resolutionConfig struct {
	maxIterations int
}

// ResolveOption configures a single PLResolution call.
type ResolveOption func(*resolutionConfig)

// WithMaxIterations overrides the default resolution-loop iteration
// bound. Reaching the bound is treated as "not entailed"
// (negation-as-failure on timeout), not as an error.
func WithMaxIterations(n int) ResolveOption {
	return func(c *resolutionConfig) { c.maxIterations = n }
}

func resolveConfig(opts []ResolveOption) resolutionConfig {
	cfg := resolutionConfig{maxIterations: defaultMaxIterations}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
