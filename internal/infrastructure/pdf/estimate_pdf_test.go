package pdf

import (
	"bytes"
	"testing"
	"time"

	"ridgeline_roofing/internal/domain/entities"
)

func sampleEstimate() entities.Estimate {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return entities.Estimate{
		ID: "est-1",
		Address: entities.Address{
			Street: "4512 Juniper Rd NE", City: "Albuquerque", State: "NM", Zip: "87111",
		},
		Measurement: entities.RoofMeasurement{
			SquareFeet:         10000,
			Pitch:              entities.Pitch6in12,
			PitchMultiplier:    1.12,
			WasteFactor:        0.10,
			AdjustedSquareFeet: 11200,
			TotalSquares:       123.2,
		},
		Package: entities.RoofingPackage{
			ID: "climateflex", Name: "ClimateFlex", PricePerSquare: 280,
			Features: []string{"Impact-rated Class 4 shingles"},
			Warranty: "Lifetime limited manufacturer warranty",
		},
		LineItems: []entities.LineItem{
			{Label: "ClimateFlex materials and labor", Amount: 34496},
			{Label: "Tear-off and disposal", Amount: 850},
		},
		Subtotal:  35346,
		Total:     35346,
		Timeline:  "1-2 weeks",
		CreatedAt: now,
		ExpiresAt: entities.ExpiryFrom(now),
	}
}

func TestRenderPDF_ProducesDocument(t *testing.T) {
	r := NewEstimateRenderer()
	out, err := r.RenderPDF(sampleEstimate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected pdf bytes")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected %%PDF header, got %q", out[:8])
	}
}

func TestRenderPDF_Deterministic(t *testing.T) {
	r := NewEstimateRenderer()
	a, err := r.RenderPDF(sampleEstimate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := r.RenderPDF(sampleEstimate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("renders differ in size: %d vs %d", len(a), len(b))
	}
}
