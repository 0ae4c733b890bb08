package astar

import "github.com/gotidy/ptr"

// Config configures one Search call. MaxExpansions is optional (spec.md
// §5: "callers that need to bound work should impose a node-expansion
// limit... recommended cap: expansions proportional to |V|·k"); nil
// means unlimited, following gotidy/ptr's pattern for an optional
// scalar field. A non-nil value is always positive: WithMaxExpansions
// rejects zero and negative budgets.
type Config struct {
	MaxExpansions *int
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns an unbounded search configuration.
func DefaultConfig() Config {
	return Config{}
}

// NewConfig builds a Config from DefaultConfig with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxExpansions caps the number of nodes Search will pop from the
// open set before giving up with ErrBudgetExceeded. Panics if n is not
// positive.
func WithMaxExpansions(n int) Option {
	if n <= 0 {
		panic("astar: MaxExpansions must be > 0")
	}
	return func(cfg *Config) { cfg.MaxExpansions = ptr.Int(n) }
}
