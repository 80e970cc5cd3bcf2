package response

import (
	"time"

	"ridgeline_roofing/internal/domain/entities"
)

type MeasurementResponse struct {
	SquareFeet         int     `json:"square_feet"`
	Pitch              string  `json:"pitch"`
	PitchMultiplier    float64 `json:"pitch_multiplier"`
	WasteFactor        float64 `json:"waste_factor"`
	AdjustedSquareFeet int     `json:"adjusted_square_feet"`
	TotalSquares       float64 `json:"total_squares"`
}

type LineItemResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type PackageResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PricePerSquare float64  `json:"price_per_square"`
	Features       []string `json:"features"`
	Warranty       string   `json:"warranty"`
	ColorTag       string   `json:"color_tag"`
	Recommended    bool     `json:"recommended"`
}

type EstimateResponse struct {
	ID          string              `json:"id"`
	Measurement MeasurementResponse `json:"measurement"`
	Package     PackageResponse     `json:"package"`
	LineItems   []LineItemResponse  `json:"line_items"`
	Subtotal    float64             `json:"subtotal"`
	Total       float64             `json:"total"`
	Timeline    string              `json:"timeline"`
	CreatedAt   time.Time           `json:"created_at"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

// EmailEstimateResponse reports the estimate plus a delivery warning when
// the email collaborator failed after the estimate was built.
type EmailEstimateResponse struct {
	Estimate        EstimateResponse `json:"estimate"`
	DeliveryWarning string           `json:"delivery_warning,omitempty"`
}

func FromPackage(p entities.RoofingPackage) PackageResponse {
	return PackageResponse{
		ID:             p.ID,
		Name:           p.Name,
		PricePerSquare: p.PricePerSquare,
		Features:       p.Features,
		Warranty:       p.Warranty,
		ColorTag:       p.ColorTag,
		Recommended:    p.Recommended,
	}
}

func FromPackages(pkgs []entities.RoofingPackage) []PackageResponse {
	out := make([]PackageResponse, len(pkgs))
	for i, p := range pkgs {
		out[i] = FromPackage(p)
	}
	return out
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, len(e.LineItems))
	for i, li := range e.LineItems {
		items[i] = LineItemResponse{Label: li.Label, Amount: li.Amount}
	}
	return EstimateResponse{
		ID: e.ID,
		Measurement: MeasurementResponse{
			SquareFeet:         e.Measurement.SquareFeet,
			Pitch:              string(e.Measurement.Pitch),
			PitchMultiplier:    e.Measurement.PitchMultiplier,
			WasteFactor:        e.Measurement.WasteFactor,
			AdjustedSquareFeet: e.Measurement.AdjustedSquareFeet,
			TotalSquares:       e.Measurement.TotalSquares,
		},
		Package:   FromPackage(e.Package),
		LineItems: items,
		Subtotal:  e.Subtotal,
		Total:     e.Total,
		Timeline:  e.Timeline,
		CreatedAt: e.CreatedAt,
		ExpiresAt: e.ExpiresAt,
	}
}
