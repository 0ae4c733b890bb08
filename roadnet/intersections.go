package roadnet

import "github.com/corenav/fleetplan/geo"

// crossing is one discovered intersection point: the two segments that
// cross (identified by polyline index + segment index) and the point
// itself.
type crossing struct {
	pA, sA int
	pB, sB int
	point  geo.Coordinate
}

// findIntersections discovers every pairwise segment crossing across
// all normalized polylines, per spec.md §4.2 step 3. Pairs are
// considered in order (i, j) with i <= j, including self-pairs (a
// polyline intersecting itself), so a loop road's self-crossing is
// found exactly like a crossing between two different roads.
//
// Within a single polyline (i == j), adjacent segments sharing an
// endpoint are skipped: they are not a crossing, they are the normal
// vertex chain. For a loop, the wrap-around pair (last segment, first
// segment) is also skipped for the same reason.
//
// Every candidate pair is tested with geo.Intersect at the configured
// epsilon. Results are returned in the deterministic order the pairs
// were visited: outer loop over i, inner over j >= i, innermost over
// segment indices in ascending order — so two independent builder runs
// over the same input always discover intersections in the same order.
func findIntersections(lines []polyline, params geo.Params) []crossing {
	var out []crossing

	for i := range lines {
		for j := i; j < len(lines); j++ {
			out = append(out, findIntersectionsPair(lines, i, j, params)...)
		}
	}

	return out
}

func findIntersectionsPair(lines []polyline, i, j int, params geo.Params) []crossing {
	var out []crossing
	a := lines[i]
	b := lines[j]
	sameLine := i == j

	for sa := 0; sa < a.segmentCount(); sa++ {
		aStart := 0
		if sameLine {
			aStart = sa
		}
		for sb := aStart; sb < b.segmentCount(); sb++ {
			if sameLine && adjacentOrSame(a, sa, sb) {
				continue
			}

			a0, a1, _, _ := a.segment(sa)
			b0, b1, _, _ := b.segment(sb)

			point, ok := geo.Intersect(a0, a1, b0, b1, params.IntersectionEpsilon)
			if !ok {
				continue
			}

			out = append(out, crossing{pA: i, sA: sa, pB: j, sB: sb, point: point})
		}
	}

	return out
}

// adjacentOrSame reports whether segment indices sa and sb within the
// same polyline are the same segment, share an endpoint vertex (i.e.
// are consecutive), or — for a loop — are the wrap-around pair
// (first segment, last segment).
func adjacentOrSame(p polyline, sa, sb int) bool {
	if sa == sb {
		return true
	}

	lo, hi := sa, sb
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo == 1 {
		return true
	}

	if p.loop && lo == 0 && hi == p.segmentCount()-1 {
		return true
	}

	return false
}
