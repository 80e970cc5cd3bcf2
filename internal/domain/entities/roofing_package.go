package entities

// RoofingPackage is a static catalog entry describing one material/warranty
// tier. Reference data only, never user-created.
type RoofingPackage struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PricePerSquare float64  `json:"price_per_square"`
	Features       []string `json:"features"`
	Warranty       string   `json:"warranty"`
	ColorTag       string   `json:"color_tag"`
	Recommended    bool     `json:"recommended"`
}
