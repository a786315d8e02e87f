// Package export writes thalweg paths and their longitudinal sections.
//
// Three path formats are supported:
//
//	DMS      the survey text layout, one "lat lon depth" line per point
//	CSV      longitude,latitude,depth (encoding/csv)
//	GeoJSON  a FeatureCollection holding a single LineString
//	         (github.com/paulmach/orb/geojson); depths travel in the
//	         feature's "depths" property, index-aligned with the coordinates
//
// A section flattens a path into (cumulative distance, depth) stations for
// plotting a longitudinal profile.
package export
