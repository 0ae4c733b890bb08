// Package conflict estimates the delay and penalty a vehicle would
// incur traversing a candidate edge, given everything already reserved
// by earlier vehicles. This estimate is the non-stationary component
// of astar's edge cost (spec.md §4.5).
package conflict

// Params holds the tunable constants spec.md §4.5 and §6 name. All
// have defaults; callers override via Option.
type Params struct {
	NodeClearanceSeconds     float64
	NodeSafetyWindowSeconds  float64
	InconveniencePenaltySeconds float64
	HeadOnPenaltySeconds     float64
}

// Option configures a Params.
type Option func(*Params)

// DefaultParams returns spec.md §4.5's default constants.
func DefaultParams() Params {
	return Params{
		NodeClearanceSeconds:        10,
		NodeSafetyWindowSeconds:     15,
		InconveniencePenaltySeconds: 30,
		HeadOnPenaltySeconds:        1e6,
	}
}

// NewParams builds a Params from DefaultParams with opts applied.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithNodeClearanceSeconds overrides NodeClearanceSeconds. Panics if
// seconds is negative.
func WithNodeClearanceSeconds(seconds float64) Option {
	if seconds < 0 {
		panic("conflict: NodeClearanceSeconds must be >= 0")
	}
	return func(p *Params) { p.NodeClearanceSeconds = seconds }
}

// WithNodeSafetyWindowSeconds overrides NodeSafetyWindowSeconds.
// Panics if seconds is negative.
func WithNodeSafetyWindowSeconds(seconds float64) Option {
	if seconds < 0 {
		panic("conflict: NodeSafetyWindowSeconds must be >= 0")
	}
	return func(p *Params) { p.NodeSafetyWindowSeconds = seconds }
}

// WithInconveniencePenaltySeconds overrides InconveniencePenaltySeconds.
// Panics if seconds is negative.
func WithInconveniencePenaltySeconds(seconds float64) Option {
	if seconds < 0 {
		panic("conflict: InconveniencePenaltySeconds must be >= 0")
	}
	return func(p *Params) { p.InconveniencePenaltySeconds = seconds }
}

// WithHeadOnPenaltySeconds overrides HeadOnPenaltySeconds. Panics if
// seconds is negative.
func WithHeadOnPenaltySeconds(seconds float64) Option {
	if seconds < 0 {
		panic("conflict: HeadOnPenaltySeconds must be >= 0")
	}
	return func(p *Params) { p.HeadOnPenaltySeconds = seconds }
}
