package request

import (
	"ridgeline_roofing/internal/domain/entities"
)

// PolygonPointRequest is one vertex of the drawn roof outline.
type PolygonPointRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AddressRequest is the reverse-geocoded address from the map widget.
type AddressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// EstimateRequest is the payload for the estimate endpoints. Pitch and waste
// factor are optional; unknown or out-of-range values fall back to defaults
// downstream instead of failing the request.
type EstimateRequest struct {
	Points          []PolygonPointRequest `json:"points"`
	Pitch           string                `json:"pitch"`
	WasteFactor     *float64              `json:"waste_factor"`
	PackageID       string                `json:"package_id" binding:"required"`
	IncludeDisposal bool                  `json:"include_disposal"`
	IncludePermits  bool                  `json:"include_permits"`
	Address         AddressRequest        `json:"address"`
}

// EmailEstimateRequest adds the destination inbox for the emailed estimate.
type EmailEstimateRequest struct {
	EstimateRequest
	Recipient string `json:"recipient" binding:"required,email"`
}

// ResolvePoints converts the outline to domain points.
func (r EstimateRequest) ResolvePoints() []entities.PolygonPoint {
	pts := make([]entities.PolygonPoint, len(r.Points))
	for i, p := range r.Points {
		pts[i] = entities.PolygonPoint{Lat: p.Lat, Lng: p.Lng}
	}
	return pts
}

// ResolveWasteFactor distinguishes "omitted" from an explicit zero: an
// omitted value gets the default, an explicit value is passed through for
// downstream range handling.
func (r EstimateRequest) ResolveWasteFactor() float64 {
	if r.WasteFactor == nil {
		return entities.DefaultWasteFactor
	}
	return *r.WasteFactor
}

// ResolveAddress converts the address to its domain form.
func (r EstimateRequest) ResolveAddress() entities.Address {
	return entities.Address{
		Street: r.Address.Street,
		City:   r.Address.City,
		State:  r.Address.State,
		Zip:    r.Address.Zip,
	}
}
