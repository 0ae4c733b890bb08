package fleetplan

import (
	"github.com/corenav/fleetplan/astar"
	"github.com/corenav/fleetplan/conflict"
	"github.com/corenav/fleetplan/geo"
)

// Config aggregates every tunable spec.md §6 names into one
// configuration record: geometric tolerances (geo.Params), conflict
// estimation constants (conflict.Params), and the optional search
// expansion budget (astar.Config).
type Config struct {
	Geo      geo.Params
	Conflict conflict.Params
	Search   astar.Config

	// DefaultVehicleSpeed and DefaultVehicleLength backfill a request
	// whose Speed or Length is left at its zero value. Zero here (the
	// Config default) means "no backfill" — a zero-speed request still
	// fails with ErrInvalidSpeed, per spec.md §7's "zero or negative
	// speed yields FAILED_NO_PATH".
	DefaultVehicleSpeed  float64
	DefaultVehicleLength float64
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns spec.md §6's default configuration surface.
func DefaultConfig() Config {
	return Config{
		Geo:      geo.DefaultParams(),
		Conflict: conflict.DefaultParams(),
		Search:   astar.DefaultConfig(),
	}
}

// NewConfig builds a Config from DefaultConfig with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithEarthRadiusMeters overrides the Haversine earth radius. Panics if
// meters is not positive.
func WithEarthRadiusMeters(meters float64) Option {
	if meters <= 0 {
		panic("fleetplan: EarthRadiusMeters must be > 0")
	}
	return func(cfg *Config) { cfg.Geo.EarthRadiusMeters = meters }
}

// WithCoordinateEqualityTolerance overrides the per-axis coordinate
// equality tolerance. Panics if tol is not positive.
func WithCoordinateEqualityTolerance(tol float64) Option {
	if tol <= 0 {
		panic("fleetplan: CoordinateEqualityTolerance must be > 0")
	}
	return func(cfg *Config) { cfg.Geo.CoordinateEqualityTolerance = tol }
}

// WithIntersectionEpsilon overrides the segment-intersection tolerance.
// Panics if eps is not positive.
func WithIntersectionEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("fleetplan: IntersectionEpsilon must be > 0")
	}
	return func(cfg *Config) { cfg.Geo.IntersectionEpsilon = eps }
}

// WithNodeKeyDecimalDigits overrides the node-key fixed-precision
// digit count. Panics if digits is not positive.
func WithNodeKeyDecimalDigits(digits int) Option {
	if digits <= 0 {
		panic("fleetplan: NodeKeyDecimalDigits must be > 0")
	}
	return func(cfg *Config) { cfg.Geo.NodeKeyDecimalDigits = digits }
}

// WithNodeClearanceSeconds overrides the node clearance duration.
// Panics if seconds is negative.
func WithNodeClearanceSeconds(seconds float64) Option {
	if seconds < 0 {
		panic("fleetplan: NodeClearanceSeconds must be >= 0")
	}
	return func(cfg *Config) { cfg.Conflict.NodeClearanceSeconds = seconds }
}

// WithNodeSafetyWindowSeconds overrides the node safety buffer. Panics
// if seconds is negative.
func WithNodeSafetyWindowSeconds(seconds float64) Option {
	if seconds < 0 {
		panic("fleetplan: NodeSafetyWindowSeconds must be >= 0")
	}
	return func(cfg *Config) { cfg.Conflict.NodeSafetyWindowSeconds = seconds }
}

// WithInconveniencePenaltySeconds overrides the flat conflict
// surcharge. Panics if seconds is negative.
func WithInconveniencePenaltySeconds(seconds float64) Option {
	if seconds < 0 {
		panic("fleetplan: InconveniencePenaltySeconds must be >= 0")
	}
	return func(cfg *Config) { cfg.Conflict.InconveniencePenaltySeconds = seconds }
}

// WithHeadOnPenaltySeconds overrides the head-on surcharge scale.
// Panics if seconds is negative.
func WithHeadOnPenaltySeconds(seconds float64) Option {
	if seconds < 0 {
		panic("fleetplan: HeadOnPenaltySeconds must be >= 0")
	}
	return func(cfg *Config) { cfg.Conflict.HeadOnPenaltySeconds = seconds }
}

// WithDefaultVehicleSpeed sets the speed backfilled onto a request
// whose Speed is zero. Panics if metersPerSecond is not positive.
func WithDefaultVehicleSpeed(metersPerSecond float64) Option {
	if metersPerSecond <= 0 {
		panic("fleetplan: DefaultVehicleSpeed must be > 0")
	}
	return func(cfg *Config) { cfg.DefaultVehicleSpeed = metersPerSecond }
}

// WithDefaultVehicleLength sets the length backfilled onto a request
// whose Length is zero. Panics if meters is negative.
func WithDefaultVehicleLength(meters float64) Option {
	if meters < 0 {
		panic("fleetplan: DefaultVehicleLength must be >= 0")
	}
	return func(cfg *Config) { cfg.DefaultVehicleLength = meters }
}

// WithMaxExpansions caps each vehicle's A* node-expansion budget.
// Panics if n is not positive.
func WithMaxExpansions(n int) Option {
	if n <= 0 {
		panic("fleetplan: MaxExpansions must be > 0")
	}
	return func(cfg *Config) { cfg.Search = astar.NewConfig(astar.WithMaxExpansions(n)) }
}
