package entities

import "time"

// estimateValidity is how long an estimate stays honored after creation.
const estimateValidity = 30 * 24 * time.Hour

// Address is the reverse-geocoded location of the measured roof, supplied by
// the map-provider collaborator.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// LineItem is one cost row of an estimate.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Estimate is a priced roof estimate.
//
// Domain notes:
//   - Created once per user session, never mutated afterwards.
//   - Not persisted server-side; recomputing from the same inputs must
//     reproduce the same totals.
//   - Subtotal and Total are distinct fields even though currently equal;
//     a tax/discount layer may make them diverge later.
type Estimate struct {
	ID          string          `json:"id"`
	Address     Address         `json:"address"`
	Measurement RoofMeasurement `json:"measurement"`
	Package     RoofingPackage  `json:"package"`
	LineItems   []LineItem      `json:"line_items"`
	Subtotal    float64         `json:"subtotal"`
	Total       float64         `json:"total"`
	Timeline    string          `json:"timeline"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// ExpiryFrom returns the validity cutoff for an estimate created at t.
func ExpiryFrom(t time.Time) time.Time {
	return t.Add(estimateValidity)
}
