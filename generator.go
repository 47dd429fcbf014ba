package main

import (
	"math/rand/v2"
)

// This file contains the mock forecast generator. There is no upstream weather
// provider anywhere in the app; every hourly forecast is derived here from a
// location's current temperature and condition plus bounded jitter.

// hourLabels is the fixed slot sequence of a forecast snapshot. Every generated
// snapshot has exactly one entry per label, in this order.
var hourLabels = [...]string{"Now", "1PM", "2PM", "3PM", "4PM", "5PM", "6PM", "7PM", "8PM", "9PM"}

const (
	temperatureJitter  = 3  // slot temperature is base +/- this
	maxPrecipitationPc = 30 // precipitation chance upper bound, inclusive
)

// randSource is the injection point for randomness. Production uses math/rand/v2;
// tests can pass a seeded PCG and assert exact sequences.
type randSource interface {
	IntN(n int) int
}

type defaultRandSource struct{}

func (defaultRandSource) IntN(n int) int { return rand.IntN(n) }

// ForecastGenerator derives hourly forecast snapshots from a base temperature
// and condition.
type ForecastGenerator struct {
	rng randSource
}

// NewForecastGenerator returns a generator backed by the process-wide random
// source.
func NewForecastGenerator() *ForecastGenerator {
	return &ForecastGenerator{rng: defaultRandSource{}}
}

// NewSeededForecastGenerator returns a generator with a deterministic random
// sequence for the given seed.
func NewSeededForecastGenerator(seed uint64) *ForecastGenerator {
	return &ForecastGenerator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Hourly generates a fresh 10-entry snapshot. Slot temperatures stay within
// [base-3, base+3], precipitation chance within [0, 30]. The condition cycles
// through a 5-slot pattern seeded by baseCondition, with the third slot of each
// cycle breaking to partly cloudy so the row doesn't render uniformly.
func (g *ForecastGenerator) Hourly(baseTemp int, baseCondition Condition) []HourlyForecast {
	pattern := [5]Condition{
		baseCondition,
		baseCondition,
		ConditionPartlyCloudy,
		baseCondition,
		baseCondition,
	}

	forecast := make([]HourlyForecast, len(hourLabels))
	for i, label := range hourLabels {
		forecast[i] = HourlyForecast{
			Hour:                label,
			Temperature:         baseTemp + g.rng.IntN(2*temperatureJitter+1) - temperatureJitter,
			Condition:           pattern[i%len(pattern)],
			PrecipitationChance: g.rng.IntN(maxPrecipitationPc + 1),
		}
	}
	return forecast
}
