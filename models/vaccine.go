package models

// Vaccine represents a vaccine stocked (or awaited) at a hospital.
// Waitlist holds patient ids, each at most once, in join order.
type Vaccine struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Stock         int      `json:"stock"`
	HospitalID    string   `json:"hospitalId"`
	Waitlist      []string `json:"waitlist"`
	MinAge        int      `json:"minAge,omitempty"`
	MaxAge        int      `json:"maxAge,omitempty"`
	DosesRequired int      `json:"dosesRequired,omitempty"`
	Manufacturer  string   `json:"manufacturer,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}
