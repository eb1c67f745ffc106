package model

// Airport is a static reference record. The table is populated
// out-of-band; the API only reads it.
type Airport struct {
	ID          int64   `json:"id"`
	IATA        string  `json:"iata"`
	ICAO        string  `json:"icao"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}
