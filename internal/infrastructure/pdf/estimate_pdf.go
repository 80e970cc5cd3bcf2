// Package pdf renders an estimate as the PDF attachment for the
// "email my estimate" flow.
package pdf

import (
	"bytes"
	"fmt"

	"ridgeline_roofing/internal/domain/entities"
	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// Page layout constants (A4 portrait in mm).
const (
	marginLeft  = 18.0
	marginTop   = 20.0
	labelWidth  = 120.0
	amountWidth = 40.0
	rowHeight   = 8.0
)

// EstimateRenderer draws a one-page estimate summary.
type EstimateRenderer struct{}

var _ interfaces.IEstimateRenderer = (*EstimateRenderer)(nil)

func NewEstimateRenderer() *EstimateRenderer {
	return &EstimateRenderer{}
}

func (r *EstimateRenderer) RenderPDF(e entities.Estimate) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLeft, marginTop, marginLeft)
	doc.AddPage()

	// Header
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, "Roof Replacement Estimate")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 10)
	if addr := formatAddress(e.Address); addr != "" {
		doc.Cell(0, 6, addr)
		doc.Ln(7)
	}
	doc.Cell(0, 6, fmt.Sprintf("Prepared %s  |  Valid through %s",
		e.CreatedAt.Format("January 2, 2006"), e.ExpiresAt.Format("January 2, 2006")))
	doc.Ln(12)

	// Measurement summary
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Roof Measurement")
	doc.Ln(9)
	doc.SetFont("Helvetica", "", 10)
	rows := []string{
		fmt.Sprintf("Footprint area: %d sq ft", e.Measurement.SquareFeet),
		fmt.Sprintf("Pitch: %s (x%.2f)", e.Measurement.Pitch, e.Measurement.PitchMultiplier),
		fmt.Sprintf("Adjusted surface: %d sq ft", e.Measurement.AdjustedSquareFeet),
		fmt.Sprintf("Waste factor: %.0f%%", e.Measurement.WasteFactor*100),
		fmt.Sprintf("Total: %.1f squares", e.Measurement.TotalSquares),
	}
	for _, row := range rows {
		doc.Cell(0, 6, row)
		doc.Ln(6)
	}
	doc.Ln(6)

	// Package and line items
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, fmt.Sprintf("%s Package", e.Package.Name))
	doc.Ln(9)
	doc.SetFont("Helvetica", "", 10)
	for _, f := range e.Package.Features {
		doc.Cell(0, 6, "- "+f)
		doc.Ln(6)
	}
	doc.Cell(0, 6, "Warranty: "+e.Package.Warranty)
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(labelWidth, rowHeight, "Item", "B", 0, "L", false, 0, "")
	doc.CellFormat(amountWidth, rowHeight, "Amount", "B", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, li := range e.LineItems {
		doc.CellFormat(labelWidth, rowHeight, li.Label, "", 0, "L", false, 0, "")
		doc.CellFormat(amountWidth, rowHeight, fmt.Sprintf("$%.0f", li.Amount), "", 1, "R", false, 0, "")
	}
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(labelWidth, rowHeight, "Total", "T", 0, "L", false, 0, "")
	doc.CellFormat(amountWidth, rowHeight, fmt.Sprintf("$%.0f", e.Total), "T", 1, "R", false, 0, "")
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, "Estimated installation timeline: "+e.Timeline)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAddress(a entities.Address) string {
	if a.Street == "" && a.City == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
}
