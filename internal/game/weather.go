package game

import mathrand "math/rand"

const (
	WeatherHot  = "Hot"
	WeatherMild = "Mild"
	WeatherCold = "Cold"
)

// Weather is transient, derived state: the climate label and the base
// customer demand it implies for the upcoming day. It is redrawn after
// every completed day and is not part of the accounting accumulators.
type Weather struct {
	Label      string `json:"label"`
	BaseDemand int    `json:"base_demand"`
}

// drawWeather picks a climate with fixed weights (Hot 0.35, Mild 0.50,
// Cold 0.15) and a base demand uniform on the label's range.
func drawWeather(r *mathrand.Rand) Weather {
	roll := r.Float64()
	switch {
	case roll < 0.35:
		return Weather{Label: WeatherHot, BaseDemand: 60 + r.Intn(51)} // [60,110]
	case roll < 0.85:
		return Weather{Label: WeatherMild, BaseDemand: 30 + r.Intn(41)} // [30,70]
	default:
		return Weather{Label: WeatherCold, BaseDemand: 5 + r.Intn(31)} // [5,35]
	}
}
