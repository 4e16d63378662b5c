package query

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Earth radius constants fixed by the backend's geo distance contract.
// Distances on the wire are expressed in radians of arc along the surface.
const (
	earthRadiusMiles      = 3956.6
	earthRadiusKilometers = 6367.5
)

// MilesToRadians converts a surface distance in miles to radians.
func MilesToRadians(mi float64) float64 {
	return mi / earthRadiusMiles
}

// KilometersToRadians converts a surface distance in kilometers to radians.
func KilometersToRadians(km float64) float64 {
	return km / earthRadiusKilometers
}

// Near constrains field to geo points, with results sorted by distance from
// point. Without a distance it narrows nothing beyond enabling the sort.
func (q *Query) Near(field string, point orb.Point) *Query {
	return q.put(field, opNear, strings.Join(coords(point), ","))
}

// NearWithinMiles constrains field to geo points at most maxDistanceMi
// miles from point. Results are sorted by distance from point.
func (q *Query) NearWithinMiles(field string, point orb.Point, maxDistanceMi float64) *Query {
	args := append(coords(point), formatFloat(MilesToRadians(maxDistanceMi)))
	return q.put(field, opNear, strings.Join(args, ","))
}

// NearWithinKilometers constrains field to geo points at most maxDistanceKm
// kilometers from point. Results are sorted by distance from point.
func (q *Query) NearWithinKilometers(field string, point orb.Point, maxDistanceKm float64) *Query {
	args := append(coords(point), formatFloat(KilometersToRadians(maxDistanceKm)))
	return q.put(field, opNear, strings.Join(args, ","))
}

// WithinRadiusMiles constrains field to geo points at most radiusMi miles
// from point. Unlike NearWithinMiles, results are not sorted by distance.
func (q *Query) WithinRadiusMiles(field string, point orb.Point, radiusMi float64) *Query {
	args := append(coords(point), formatFloat(MilesToRadians(radiusMi)))
	return q.put(field, opWithin, strings.Join(args, ","))
}

// WithinRadiusKilometers constrains field to geo points at most radiusKm
// kilometers from point. Results are not sorted by distance.
func (q *Query) WithinRadiusKilometers(field string, point orb.Point, radiusKm float64) *Query {
	args := append(coords(point), formatFloat(KilometersToRadians(radiusKm)))
	return q.put(field, opWithin, strings.Join(args, ","))
}

// WithinBox constrains field to geo points inside the bounding box: box.Min
// is the lower-left corner, box.Max the upper-right.
func (q *Query) WithinBox(field string, box orb.Bound) *Query {
	args := append(coords(box.Min), coords(box.Max)...)
	return q.put(field, opWithin, strings.Join(args, ","))
}

// coords renders a point as its wire coordinate list, longitude first.
func coords(p orb.Point) []string {
	return []string{formatFloat(p.Lon()), formatFloat(p.Lat())}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
