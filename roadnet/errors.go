// errors.go — sentinel errors for the roadnet package.
//
// Error policy (matching builder/errors.go):
//   - Only sentinel package-level errors are exposed.
//   - Callers use errors.Is to branch on semantics.
//   - Context is attached at the call site with fmt.Errorf("%w: ...").
package roadnet

import "errors"

var (
	// ErrEmptyGraph indicates the builder produced a graph with zero
	// nodes — every feature was either ineligible or degenerate. This is
	// spec.md §7's NoGraph failure kind.
	ErrEmptyGraph = errors.New("roadnet: road features yielded an empty graph")

	// ErrProjectionFailed indicates Project could not locate any node or
	// edge in the graph to snap onto (the graph had no reachable nodes
	// relative to the target point — in practice, an empty graph). This
	// is spec.md §7's ProjectionFailed failure kind.
	ErrProjectionFailed = errors.New("roadnet: projection target has no reachable graph locus")
)
