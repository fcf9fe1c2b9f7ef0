package dto

// CountryResponse represents one country reference entry.
// The legacy backend names the image field country_image.
type CountryResponse struct {
	CountryID    string `json:"country_id"`
	Name         string `json:"name"`
	CountryImage string `json:"country_image"`
}
