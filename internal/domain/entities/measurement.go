package entities

// PolygonPoint is a single vertex of a roof outline drawn on the map widget.
//
// Coordinates are WGS84 latitude/longitude. An outline is an ordered sequence
// of at least 3 points and is implicitly closed (last vertex connects back to
// the first).
type PolygonPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pitch is the roof slope expressed as rise over a 12" run.
//
// The set is closed; ParsePitch maps anything else to DefaultPitch rather
// than failing, because the drawing tool may send a label we have never seen
// and a slightly-off estimate beats no estimate.
type Pitch string

const (
	Pitch4in12  Pitch = "4/12"
	Pitch5in12  Pitch = "5/12"
	Pitch6in12  Pitch = "6/12"
	Pitch7in12  Pitch = "7/12"
	Pitch8in12  Pitch = "8/12"
	Pitch9in12  Pitch = "9/12"
	Pitch10in12 Pitch = "10/12"
	Pitch12in12 Pitch = "12/12"
)

// DefaultPitch is the fallback for unrecognized pitch labels.
const DefaultPitch = Pitch6in12

// DefaultWasteFactor covers material cut-offs and overlap.
const DefaultWasteFactor = 0.10

// pitchMultipliers converts a flat footprint into true sloped surface area.
// Steeper pitch means a strictly larger multiplier.
var pitchMultipliers = map[Pitch]float64{
	Pitch4in12:  1.06,
	Pitch5in12:  1.08,
	Pitch6in12:  1.12,
	Pitch7in12:  1.16,
	Pitch8in12:  1.20,
	Pitch9in12:  1.25,
	Pitch10in12: 1.30,
	Pitch12in12: 1.41,
}

// ParsePitch resolves a client-supplied pitch label, falling back to
// DefaultPitch for anything outside the known set.
func ParsePitch(label string) Pitch {
	p := Pitch(label)
	if _, ok := pitchMultipliers[p]; ok {
		return p
	}
	return DefaultPitch
}

// Multiplier returns the surface-area multiplier for the pitch. Unknown
// values resolve through DefaultPitch so the result is always usable.
func (p Pitch) Multiplier() float64 {
	if m, ok := pitchMultipliers[p]; ok {
		return m
	}
	return pitchMultipliers[DefaultPitch]
}

// AllPitches lists the supported pitch labels from shallow to steep.
func AllPitches() []Pitch {
	return []Pitch{
		Pitch4in12, Pitch5in12, Pitch6in12, Pitch7in12,
		Pitch8in12, Pitch9in12, Pitch10in12, Pitch12in12,
	}
}

// RoofMeasurement is the derived sizing of a drawn roof. Immutable once
// computed.
//
// Invariants:
//   - AdjustedSquareFeet = round(SquareFeet * PitchMultiplier)
//   - TotalSquares       = round(AdjustedSquareFeet * (1 + WasteFactor) / 100, 1 decimal)
//
// The rounding order matters for reproducibility and is fixed.
type RoofMeasurement struct {
	SquareFeet         int     `json:"square_feet"`
	Pitch              Pitch   `json:"pitch"`
	PitchMultiplier    float64 `json:"pitch_multiplier"`
	WasteFactor        float64 `json:"waste_factor"`
	AdjustedSquareFeet int     `json:"adjusted_square_feet"`
	TotalSquares       float64 `json:"total_squares"`
}
