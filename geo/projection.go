package geo

// ProjectOntoSegment returns the closest point to C lying on the segment
// [A,B], treating lat/lng as a planar Cartesian pair. This is a planar
// approximation: acceptable because callers restrict work to road
// networks spanning at most a few hundred meters, well under the
// distortion that would matter at the tolerances this package uses.
//
// t = clamp(((C−A)·(B−A)) / ‖B−A‖², 0, 1)
// result = A + t·(B−A)
//
// If A and B coincide, ProjectOntoSegment returns A.
//
// Complexity: O(1).
func ProjectOntoSegment(a, b, c Coordinate) Coordinate {
	ab := b.Sub(a)
	lengthSquared := ab.Lat*ab.Lat + ab.Lng*ab.Lng
	if lengthSquared == 0 {
		return a
	}

	ac := c.Sub(a)
	t := (ac.Lat*ab.Lat + ac.Lng*ab.Lng) / lengthSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return a.Add(ab.Scale(t))
}
