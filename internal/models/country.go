package models

// Country is immutable reference data served by the backend. Trips are
// keyed to a country id resolved by reverse lookup from the geocoded
// location text.
type Country struct {
	CountryID string
	Name      string
	ImageURL  string
}
