package models

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Hospital represents a facility in the network.
type Hospital struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Geo         *GeoPoint `json:"geo,omitempty"`
	Type        string    `json:"type,omitempty"` // e.g. "General", "Rural Clinic"
	ImageURL    string    `json:"imageUrl,omitempty"`
	Services    []string  `json:"services,omitempty"`
	KeySupplies []string  `json:"keySupplies,omitempty"`
}
