package geo

// Params collects the tunables every geo primitive in this package
// accepts. It is built with DefaultParams and customized via functional
// Option values, the same pattern dijkstra.Options uses: a
// zero-value-unsafe struct, a constructor with sane defaults, and
// With-prefixed mutators that panic on nonsensical input rather than
// silently clamping it.
type Params struct {
	// EarthRadiusMeters is R in the Haversine formula. Default 6,371,000.
	EarthRadiusMeters float64

	// CoordinateEqualityTolerance is the per-axis absolute tolerance used
	// by Equals. Default 1e-7 (roughly 1cm at the equator).
	CoordinateEqualityTolerance float64

	// IntersectionEpsilon is the slack added to the [0,1] segment
	// parameter range accepted by Intersect. Default 1e-5.
	IntersectionEpsilon float64

	// NodeKeyDecimalDigits is the number of fractional digits used when
	// canonicalizing a Coordinate into a node key. Default 8.
	NodeKeyDecimalDigits int
}

// Option configures a Params value.
type Option func(*Params)

// DefaultParams returns the spec-mandated defaults.
func DefaultParams() Params {
	return Params{
		EarthRadiusMeters:           6371000.0,
		CoordinateEqualityTolerance: 1e-7,
		IntersectionEpsilon:         1e-5,
		NodeKeyDecimalDigits:        8,
	}
}

// NewParams returns DefaultParams with opts applied in order.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithEarthRadiusMeters overrides the Haversine radius. Panics if radius
// is not strictly positive.
func WithEarthRadiusMeters(radius float64) Option {
	if radius <= 0 {
		panic(ErrBadEarthRadius.Error())
	}

	return func(p *Params) { p.EarthRadiusMeters = radius }
}

// WithCoordinateEqualityTolerance overrides the per-axis equality
// tolerance. Panics if tol is not strictly positive.
func WithCoordinateEqualityTolerance(tol float64) Option {
	if tol <= 0 {
		panic(ErrBadTolerance.Error())
	}

	return func(p *Params) { p.CoordinateEqualityTolerance = tol }
}

// WithIntersectionEpsilon overrides the segment-parameter slack accepted
// by Intersect. Panics if eps is not strictly positive.
func WithIntersectionEpsilon(eps float64) Option {
	if eps <= 0 {
		panic(ErrBadEpsilon.Error())
	}

	return func(p *Params) { p.IntersectionEpsilon = eps }
}

// WithNodeKeyDecimalDigits overrides the fractional-digit precision used
// by NodeKey. Panics if digits is negative.
func WithNodeKeyDecimalDigits(digits int) Option {
	if digits < 0 {
		panic(ErrBadDecimalDigits.Error())
	}

	return func(p *Params) { p.NodeKeyDecimalDigits = digits }
}
