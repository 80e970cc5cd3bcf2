// Package geometry converts a hand-drawn roof outline into a sized
// RoofMeasurement.
package geometry

import (
	"math"

	"ridgeline_roofing/internal/domain/entities"
)

// Empirical feet-per-degree scale factors for the service region's latitude
// band (roughly 33°–37°N). These are NOT a general geodetic projection; they
// are only valid because every roof we measure sits inside that band.
const (
	feetPerDegreeLat = 364000.0
	feetPerDegreeLng = 288200.0
)

// ComputeArea returns the flat footprint area of the drawn outline in square
// feet, rounded to the nearest integer.
//
// The shoelace formula runs over the vertex list with longitude as x and
// latitude as y, then the square-degree result is scaled to square feet.
// The absolute value makes winding order irrelevant. Self-intersecting
// outlines are not detected and produce a mathematically defined but wrong
// area; the drawing tool already constrains the shape, so we stay permissive
// here instead of validating simplicity.
//
// Fewer than 3 points is not an error: the outline encloses nothing and the
// area is 0.
func ComputeArea(points []entities.PolygonPoint) int {
	if len(points) < 3 {
		return 0
	}

	sum := 0.0
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].Lng * points[j].Lat
		sum -= points[j].Lng * points[i].Lat
	}
	areaDeg := math.Abs(sum) / 2

	areaFeet := areaDeg * feetPerDegreeLat * feetPerDegreeLng
	return int(math.Round(areaFeet))
}

// Adjust applies the pitch multiplier and waste factor to a footprint area.
//
// Rounding happens at each stage: the pitch-adjusted area is rounded to a
// whole square foot before the waste factor is applied, and the final squares
// figure is rounded to one decimal. Changing that order changes results, so
// it is fixed.
//
// A waste factor outside [0,1) falls back to the default, the same graceful
// treatment unknown pitch labels get.
func Adjust(squareFeet int, pitch entities.Pitch, wasteFactor float64) entities.RoofMeasurement {
	pitch = entities.ParsePitch(string(pitch))
	if wasteFactor < 0 || wasteFactor >= 1 {
		wasteFactor = entities.DefaultWasteFactor
	}

	mult := pitch.Multiplier()
	adjusted := int(math.Round(float64(squareFeet) * mult))
	totalSquares := math.Round(float64(adjusted)*(1+wasteFactor)/100*10) / 10

	return entities.RoofMeasurement{
		SquareFeet:         squareFeet,
		Pitch:              pitch,
		PitchMultiplier:    mult,
		WasteFactor:        wasteFactor,
		AdjustedSquareFeet: adjusted,
		TotalSquares:       totalSquares,
	}
}

// Measure is the full calculator: outline in, measurement out.
func Measure(points []entities.PolygonPoint, pitch entities.Pitch, wasteFactor float64) entities.RoofMeasurement {
	return Adjust(ComputeArea(points), pitch, wasteFactor)
}
