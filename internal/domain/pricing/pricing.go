// Package pricing maps a measured roof and a selected material package to a
// line-itemized cost total.
package pricing

import (
	"errors"
	"math"

	"ridgeline_roofing/internal/domain/entities"
)

var ErrInvalidPackage = errors.New("invalid roofing package")

// Flat fees gated by the caller's include flags.
const (
	DisposalFee = 850.0
	PermitFee   = 250.0
)

// catalog is the static package lineup. Reference data; order is the display
// order on the package picker.
var catalog = []entities.RoofingPackage{
	{
		ID:             "essentialshield",
		Name:           "EssentialShield",
		PricePerSquare: 240,
		Features: []string{
			"Architectural asphalt shingles",
			"Synthetic underlayment",
			"Standard ridge venting",
		},
		Warranty: "25-year manufacturer warranty",
		ColorTag: "slate",
	},
	{
		ID:             "climateflex",
		Name:           "ClimateFlex",
		PricePerSquare: 280,
		Features: []string{
			"Impact-rated Class 4 shingles",
			"Ice and water shield at eaves and valleys",
			"Upgraded ridge and intake venting",
			"High-desert UV rated underlayment",
		},
		Warranty:    "Lifetime limited manufacturer warranty",
		ColorTag:    "forest",
		Recommended: true,
	},
	{
		ID:             "summitpro",
		Name:           "SummitPro",
		PricePerSquare: 340,
		Features: []string{
			"Designer-profile impact shingles",
			"Full-deck ice and water shield",
			"Copper valley flashing",
			"10-year workmanship coverage",
		},
		Warranty: "Lifetime limited warranty plus 10-year workmanship",
		ColorTag: "copper",
	},
}

// Breakdown is the itemized output of PriceEstimate. Subtotal and Total are
// computed separately even though currently equal; keep both.
type Breakdown struct {
	MaterialLabor float64 `json:"material_labor"`
	Disposal      float64 `json:"disposal"`
	Permits       float64 `json:"permits"`
	Subtotal      float64 `json:"subtotal"`
	Total         float64 `json:"total"`
}

// Packages returns the catalog in display order.
func Packages() []entities.RoofingPackage {
	out := make([]entities.RoofingPackage, len(catalog))
	copy(out, catalog)
	return out
}

// PackageByID looks a package up by catalog id.
func PackageByID(id string) (entities.RoofingPackage, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.RoofingPackage{}, ErrInvalidPackage
}

// PriceEstimate prices a roof of totalSquares squares under the given
// package. An unknown package id is fatal to the calculation and surfaced to
// the caller; there is nothing to retry.
func PriceEstimate(totalSquares float64, packageID string, includeDisposal, includePermits bool) (Breakdown, error) {
	pkg, err := PackageByID(packageID)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		MaterialLabor: math.Round(totalSquares * pkg.PricePerSquare),
	}
	if includeDisposal {
		b.Disposal = DisposalFee
	}
	if includePermits {
		b.Permits = PermitFee
	}
	b.Subtotal = b.MaterialLabor + b.Disposal + b.Permits
	b.Total = b.Subtotal
	return b, nil
}

// Timeline returns the installation-duration estimate shown alongside the
// price, bucketed by job size.
func Timeline(totalSquares float64) string {
	switch {
	case totalSquares <= 15:
		return "1-2 days"
	case totalSquares <= 30:
		return "2-3 days"
	case totalSquares <= 50:
		return "3-5 days"
	default:
		return "1-2 weeks"
	}
}

// LineItems expands a breakdown into display rows, skipping excluded fees.
func LineItems(b Breakdown, pkg entities.RoofingPackage) []entities.LineItem {
	items := []entities.LineItem{
		{Label: pkg.Name + " materials and labor", Amount: b.MaterialLabor},
	}
	if b.Disposal > 0 {
		items = append(items, entities.LineItem{Label: "Tear-off and disposal", Amount: b.Disposal})
	}
	if b.Permits > 0 {
		items = append(items, entities.LineItem{Label: "Permits", Amount: b.Permits})
	}
	return items
}
