package models

// Metric identifies one summary field of the display region.
type Metric string

const (
	MetricTemperature Metric = "temp"
	MetricHumidity    Metric = "rh"
	MetricDewPoint    Metric = "dew"
	MetricWindSpeed   Metric = "wind"
	MetricVisibility  Metric = "vis"
	MetricPressure    Metric = "pressure"
)

// Metrics returns the summary fields in display order.
func Metrics() []Metric {
	return []Metric{
		MetricTemperature,
		MetricHumidity,
		MetricDewPoint,
		MetricWindSpeed,
		MetricVisibility,
		MetricPressure,
	}
}

// Unit is the suffix appended to the metric's value before display.
func (m Metric) Unit() string {
	switch m {
	case MetricTemperature, MetricDewPoint:
		return "°C"
	case MetricHumidity:
		return "%"
	case MetricWindSpeed:
		return "km/h"
	case MetricVisibility:
		return "km"
	case MetricPressure:
		return "hPa"
	}
	return ""
}

// Label is the human-readable name used by the terminal display.
func (m Metric) Label() string {
	switch m {
	case MetricTemperature:
		return "Temperature"
	case MetricHumidity:
		return "Humidity"
	case MetricDewPoint:
		return "Dew Point"
	case MetricWindSpeed:
		return "Wind Speed"
	case MetricVisibility:
		return "Visibility"
	case MetricPressure:
		return "Pressure"
	}
	return string(m)
}

// Value extracts the metric's reading from a summary.
func (s WeatherSummary) Value(m Metric) float64 {
	switch m {
	case MetricTemperature:
		return s.Temperature
	case MetricHumidity:
		return s.Humidity
	case MetricDewPoint:
		return s.DewPoint
	case MetricWindSpeed:
		return s.WindSpeed
	case MetricVisibility:
		return s.Visibility
	case MetricPressure:
		return s.Pressure
	}
	return 0
}
