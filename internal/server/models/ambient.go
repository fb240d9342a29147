package models

// BackgroundImage is a photo URL for the dashboard backdrop. Source names
// the provider that produced it ("pixabay" or "gallery").
type BackgroundImage struct {
	URL    string
	Source string
}

// Weather is a current-conditions reading.
type Weather struct {
	Description  string
	TemperatureC float64
}
