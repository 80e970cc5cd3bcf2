package geometry

import (
	"math"
	"testing"

	"ridgeline_roofing/internal/domain/entities"
)

func TestComputeArea_FewerThanThreePoints(t *testing.T) {
	cases := [][]entities.PolygonPoint{
		nil,
		{},
		{{Lat: 35.1, Lng: -106.6}},
		{{Lat: 35.1, Lng: -106.6}, {Lat: 35.2, Lng: -106.7}},
	}
	for _, pts := range cases {
		if got := ComputeArea(pts); got != 0 {
			t.Fatalf("expected 0 for %d points, got %d", len(pts), got)
		}
	}
}

func TestComputeArea_UnitSquare(t *testing.T) {
	// A 0.0001° x 0.0001° square: 0.0001*364000 ft by 0.0001*288200 ft.
	pts := []entities.PolygonPoint{
		{Lat: 35.0000, Lng: -106.0000},
		{Lat: 35.0000, Lng: -106.0001},
		{Lat: 35.0001, Lng: -106.0001},
		{Lat: 35.0001, Lng: -106.0000},
	}
	want := int(math.Round(0.0001 * 364000 * 0.0001 * 288200))
	if got := ComputeArea(pts); got != want {
		t.Fatalf("expected %d sqft, got %d", want, got)
	}
}

func TestComputeArea_WindingOrderIrrelevant(t *testing.T) {
	ccw := []entities.PolygonPoint{
		{Lat: 35.0000, Lng: -106.0000},
		{Lat: 35.0000, Lng: -106.0002},
		{Lat: 35.0002, Lng: -106.0002},
	}
	cw := []entities.PolygonPoint{ccw[2], ccw[1], ccw[0]}

	a, b := ComputeArea(ccw), ComputeArea(cw)
	if a != b {
		t.Fatalf("winding order changed area: %d vs %d", a, b)
	}
	if a <= 0 {
		t.Fatalf("expected positive area, got %d", a)
	}
}

func TestAdjust_KnownValues(t *testing.T) {
	m := Adjust(100000, entities.Pitch6in12, 0.10)
	if m.AdjustedSquareFeet != 112000 {
		t.Fatalf("expected adjusted 112000, got %d", m.AdjustedSquareFeet)
	}
	if m.TotalSquares != 1232.0 {
		t.Fatalf("expected 1232.0 squares, got %v", m.TotalSquares)
	}

	m = Adjust(10000, entities.Pitch6in12, 0.10)
	if m.AdjustedSquareFeet != 11200 {
		t.Fatalf("expected adjusted 11200, got %d", m.AdjustedSquareFeet)
	}
	if m.TotalSquares != 123.2 {
		t.Fatalf("expected 123.2 squares, got %v", m.TotalSquares)
	}
}

func TestAdjust_UnknownPitchFallsBack(t *testing.T) {
	m := Adjust(10000, entities.Pitch("steep-ish"), 0.10)
	if m.Pitch != entities.DefaultPitch {
		t.Fatalf("expected fallback to %s, got %s", entities.DefaultPitch, m.Pitch)
	}
	if m.PitchMultiplier != entities.DefaultPitch.Multiplier() {
		t.Fatalf("expected default multiplier, got %v", m.PitchMultiplier)
	}
}

func TestAdjust_BadWasteFactorFallsBack(t *testing.T) {
	for _, wf := range []float64{-0.1, 1.0, 2.5} {
		m := Adjust(10000, entities.Pitch6in12, wf)
		if m.WasteFactor != entities.DefaultWasteFactor {
			t.Fatalf("waste factor %v: expected default, got %v", wf, m.WasteFactor)
		}
	}
}

func TestAdjust_MonotonicInPitch(t *testing.T) {
	prev := -1.0
	for _, p := range entities.AllPitches() {
		m := Adjust(50000, p, 0.10)
		if m.TotalSquares < prev {
			t.Fatalf("total squares decreased at pitch %s: %v < %v", p, m.TotalSquares, prev)
		}
		prev = m.TotalSquares
	}
}

func TestMeasure_Deterministic(t *testing.T) {
	pts := []entities.PolygonPoint{
		{Lat: 35.0844, Lng: -106.6504},
		{Lat: 35.0846, Lng: -106.6504},
		{Lat: 35.0846, Lng: -106.6501},
		{Lat: 35.0844, Lng: -106.6501},
	}
	first := Measure(pts, entities.Pitch8in12, 0.10)
	for i := 0; i < 5; i++ {
		if got := Measure(pts, entities.Pitch8in12, 0.10); got != first {
			t.Fatalf("measurement not deterministic: %+v vs %+v", got, first)
		}
	}
}
