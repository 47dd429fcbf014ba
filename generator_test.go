package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyStructure(t *testing.T) {
	gen := NewSeededForecastGenerator(1)

	forecast := gen.Hourly(22, ConditionPartlyCloudy)

	require.Len(t, forecast, 10)
	expectedLabels := []string{"Now", "1PM", "2PM", "3PM", "4PM", "5PM", "6PM", "7PM", "8PM", "9PM"}
	for i, entry := range forecast {
		assert.Equal(t, expectedLabels[i], entry.Hour, "slot %d label", i)
	}
}

func TestHourlyBounds(t *testing.T) {
	gen := NewForecastGenerator()

	testCases := []struct {
		name     string
		baseTemp int
	}{
		{name: "Mild", baseTemp: 22},
		{name: "Freezing", baseTemp: -10},
		{name: "Hot", baseTemp: 38},
		{name: "Zero", baseTemp: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Randomized output: repeat to cover the jitter range.
			for range 20 {
				forecast := gen.Hourly(tc.baseTemp, ConditionCloudy)
				require.Len(t, forecast, 10)
				for i, entry := range forecast {
					assert.GreaterOrEqual(t, entry.Temperature, tc.baseTemp-3, "slot %d", i)
					assert.LessOrEqual(t, entry.Temperature, tc.baseTemp+3, "slot %d", i)
					assert.GreaterOrEqual(t, entry.PrecipitationChance, 0, "slot %d", i)
					assert.LessOrEqual(t, entry.PrecipitationChance, 30, "slot %d", i)
				}
			}
		})
	}
}

func TestHourlyConditionPattern(t *testing.T) {
	gen := NewSeededForecastGenerator(7)

	baseConditions := []Condition{
		ConditionSunny,
		ConditionPartlyCloudy,
		ConditionCloudy,
		ConditionRainy,
		ConditionStormy,
		ConditionSnowy,
		ConditionFoggy,
		ConditionWindy,
	}

	for _, base := range baseConditions {
		t.Run(base.String(), func(t *testing.T) {
			forecast := gen.Hourly(20, base)
			require.Len(t, forecast, 10)
			for i, entry := range forecast {
				if i%5 == 2 {
					assert.Equal(t, ConditionPartlyCloudy, entry.Condition, "slot %d breaks the cycle", i)
				} else {
					assert.Equal(t, base, entry.Condition, "slot %d follows the base", i)
				}
			}
		})
	}
}

func TestHourlySeededDeterminism(t *testing.T) {
	first := NewSeededForecastGenerator(42).Hourly(18, ConditionRainy)
	second := NewSeededForecastGenerator(42).Hourly(18, ConditionRainy)

	assert.Equal(t, first, second)
}

func TestHourlyRegenerationIsFresh(t *testing.T) {
	gen := NewSeededForecastGenerator(3)

	first := gen.Hourly(18, ConditionRainy)
	second := gen.Hourly(18, ConditionRainy)

	// Same inputs, same structure, but the random sequence moves on.
	require.Len(t, second, len(first))
	assert.NotEqual(t, first, second)
}
