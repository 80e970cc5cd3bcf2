package interfaces

import "ridgeline_roofing/internal/domain/entities"

// IEstimateRenderer produces the PDF attachment for an emailed estimate.
type IEstimateRenderer interface {
	RenderPDF(e entities.Estimate) ([]byte, error)
}
