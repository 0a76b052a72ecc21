package models

import "strconv"

// Selection is the city chosen by the user from the selectable options.
type Selection struct {
	City string `json:"city"`
}

// WeatherSummary holds the six numeric readings the assessment service
// derives for a city.
type WeatherSummary struct {
	Temperature float64 `json:"temp"`
	Humidity    float64 `json:"rh"`
	DewPoint    float64 `json:"dew"`
	WindSpeed   float64 `json:"wind"`
	Visibility  float64 `json:"vis"`
	Pressure    float64 `json:"pressure"`
}

// Assessment is the success payload of one request cycle: the summary
// readings plus the pre-formatted result markup produced by the service.
// It lives for a single display update and is not persisted anywhere.
type Assessment struct {
	Summary WeatherSummary `json:"weather_summary"`
	Result  string         `json:"result"`
}

// FormatValue renders a reading the way the original page did: shortest
// decimal form, integral values without a trailing ".0".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
