package game

import (
	mathrand "math/rand"
	"testing"
)

func TestDrawWeatherRanges(t *testing.T) {
	r := mathrand.New(mathrand.NewSource(42))
	seen := map[string]bool{}

	for i := 0; i < 2000; i++ {
		w := drawWeather(r)
		seen[w.Label] = true
		switch w.Label {
		case WeatherHot:
			if w.BaseDemand < 60 || w.BaseDemand > 110 {
				t.Fatalf("hot base demand %d out of [60, 110]", w.BaseDemand)
			}
		case WeatherMild:
			if w.BaseDemand < 30 || w.BaseDemand > 70 {
				t.Fatalf("mild base demand %d out of [30, 70]", w.BaseDemand)
			}
		case WeatherCold:
			if w.BaseDemand < 5 || w.BaseDemand > 35 {
				t.Fatalf("cold base demand %d out of [5, 35]", w.BaseDemand)
			}
		default:
			t.Fatalf("unknown weather label %q", w.Label)
		}
	}

	for _, label := range []string{WeatherHot, WeatherMild, WeatherCold} {
		if !seen[label] {
			t.Fatalf("weather %q never drawn in 2000 rolls", label)
		}
	}
}

func TestDrawWeatherMildIsMostCommon(t *testing.T) {
	r := mathrand.New(mathrand.NewSource(7))
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		counts[drawWeather(r).Label]++
	}
	if counts[WeatherMild] <= counts[WeatherHot] || counts[WeatherMild] <= counts[WeatherCold] {
		t.Fatalf("mild should dominate: %v", counts)
	}
	if counts[WeatherHot] <= counts[WeatherCold] {
		t.Fatalf("hot should beat cold: %v", counts)
	}
}
