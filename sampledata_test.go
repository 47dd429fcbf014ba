package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSampleLocations(t *testing.T) {
	locations := sampleLocations()
	assert.NotEmpty(t, locations)

	current := 0
	seen := make(map[uuid.UUID]bool)
	for _, loc := range locations {
		if loc.IsCurrent {
			current++
		}
		assert.False(t, seen[loc.LocationID], "duplicate location id %s", loc.LocationID)
		seen[loc.LocationID] = true
		assert.NotEmpty(t, loc.CityName)
		assert.Len(t, loc.CountryCode, 2)
		assert.True(t, loc.Condition.valid(), "location %s has invalid condition", loc.CityName)
	}
	assert.Equal(t, 1, current, "exactly one location is the current position")
}

func TestSampleDailyForecast(t *testing.T) {
	daily := sampleDailyForecast()
	assert.Len(t, daily, 7)
	assert.Equal(t, "Today", daily[0].Day)

	for _, d := range daily {
		assert.GreaterOrEqual(t, d.HighTemp, d.LowTemp, "day %s", d.Day)
		assert.GreaterOrEqual(t, d.PrecipitationChance, 0)
		assert.LessOrEqual(t, d.PrecipitationChance, 100)
		assert.True(t, d.Condition.valid())
	}
}
