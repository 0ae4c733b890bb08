package geo

import "strconv"

// nodeKeySeparator separates the latitude and longitude fields of a
// canonical node key.
const nodeKeySeparator = ","

// segmentKeySeparator separates the two node keys of a canonical segment
// key.
const segmentKeySeparator = "|"

// NodeKey returns the canonical string form of c: a fixed-precision
// decimal encoding of (Lat, Lng) with decimalDigits fractional digits,
// joined by a comma. Two coordinates equal to within that precision
// produce identical keys, which is what lets the graph builder and
// projector treat "same node" as "same key" after rounding.
//
// Complexity: O(1).
func NodeKey(c Coordinate, decimalDigits int) string {
	lat := strconv.FormatFloat(c.Lat, 'f', decimalDigits, 64)
	lng := strconv.FormatFloat(c.Lng, 'f', decimalDigits, 64)

	return lat + nodeKeySeparator + lng
}

// SegmentKey returns the canonical undirected key for the edge between
// node keys a and b: the two keys joined by "|" in lexicographic order.
// Direction of travel is recorded inside the occupation record, never in
// the key — see reservation.SegmentOccupation.
//
// Complexity: O(len(a)+len(b)).
func SegmentKey(a, b string) string {
	if a <= b {
		return a + segmentKeySeparator + b
	}

	return b + segmentKeySeparator + a
}
