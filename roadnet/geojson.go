package roadnet

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/corenav/fleetplan/geo"
)

// FromGeoJSON adapts a GeoJSON FeatureCollection into RoadFeatures, so
// a road network drawn in any standard map-editing tool can feed
// straight into Build without a bespoke ingestion format.
//
// Feature classification:
//   - LineString geometry -> KindRoad. Properties["blocked"] == true
//     (if present) sets Properties.IsBlocked.
//   - Point geometry -> KindMarker.
//   - Polygon geometry -> KindPolygon.
//   - Anything else (MultiLineString, GeometryCollection, ...) is
//     rejected: this adapter only understands the three shapes spec.md
//     §3 names.
//
// Every other GeoJSON property is copied into Properties.Extra
// verbatim (shallow copy, same contract as RoadFeature.Properties).
func FromGeoJSON(data []byte) ([]RoadFeature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("roadnet: parsing geojson: %w", err)
	}

	features := make([]RoadFeature, 0, len(fc.Features))
	for i, f := range fc.Features {
		rf, err := convertFeature(i, f)
		if err != nil {
			return nil, err
		}
		features = append(features, rf)
	}

	return features, nil
}

func convertFeature(index int, f *geojson.Feature) (RoadFeature, error) {
	id := fmt.Sprintf("feature-%d", index)
	if s, ok := f.ID.(string); ok && s != "" {
		id = s
	}

	props := Properties{Extra: make(map[string]interface{}, len(f.Properties))}
	for k, v := range f.Properties {
		if k == "blocked" {
			if b, ok := v.(bool); ok {
				props.IsBlocked = b
			}
			continue
		}
		props.Extra[k] = v
	}

	switch {
	case f.Geometry.IsLineString():
		return RoadFeature{
			ID:         id,
			Kind:       KindRoad,
			Polyline:   convertLineString(f.Geometry.LineString),
			Properties: props,
		}, nil

	case f.Geometry.IsPoint():
		return RoadFeature{
			ID:         id,
			Kind:       KindMarker,
			Polyline:   convertLineString([][]float64{f.Geometry.Point}),
			Properties: props,
		}, nil

	case f.Geometry.IsPolygon():
		var ring []geo.Coordinate
		if len(f.Geometry.Polygon) > 0 {
			ring = convertLineString(f.Geometry.Polygon[0])
		}
		return RoadFeature{
			ID:         id,
			Kind:       KindPolygon,
			Polyline:   ring,
			Properties: props,
		}, nil

	default:
		return RoadFeature{}, fmt.Errorf("roadnet: feature %q has an unsupported geometry type %q", id, f.Geometry.Type)
	}
}

func convertLineString(coords [][]float64) []geo.Coordinate {
	out := make([]geo.Coordinate, len(coords))
	for i, c := range coords {
		// GeoJSON orders position arrays [lng, lat].
		out[i] = geo.Coordinate{Lng: c[0], Lat: c[1]}
	}
	return out
}
