package main

import (
	"github.com/google/uuid"
)

// This file holds the sample catalog the engine is seeded with at startup.
// The data is deliberately static: the app demonstrates the state engine, not
// a weather provider. Swapping in a live data source would replace this file.

// sampleLocations returns the startup catalog. Exactly one entry carries the
// current-position flag; selection never moves it.
func sampleLocations() []Location {
	return []Location{
		{
			LocationID:  uuid.MustParse("7d3f1b2a-9c41-4b8e-a7f0-1e2d3c4b5a69"),
			CityName:    "Cupertino",
			CountryCode: "US",
			Temperature: 22,
			Condition:   ConditionPartlyCloudy,
			IsCurrent:   true,
		},
		{
			LocationID:  uuid.MustParse("f1e2d3c4-b5a6-4978-8c1d-2e3f4a5b6c7d"),
			CityName:    "London",
			CountryCode: "GB",
			Temperature: 17,
			Condition:   ConditionRainy,
		},
		{
			LocationID:  uuid.MustParse("0a1b2c3d-4e5f-4607-9182-a3b4c5d6e7f8"),
			CityName:    "Tokyo",
			CountryCode: "JP",
			Temperature: 28,
			Condition:   ConditionSunny,
		},
		{
			LocationID:  uuid.MustParse("9f8e7d6c-5b4a-4392-8176-5e4d3c2b1a09"),
			CityName:    "Sydney",
			CountryCode: "AU",
			Temperature: 19,
			Condition:   ConditionWindy,
		},
		{
			LocationID:  uuid.MustParse("3c2b1a09-8f7e-4d6c-b5a4-93827160fedc"),
			CityName:    "Reykjavik",
			CountryCode: "IS",
			Temperature: 8,
			Condition:   ConditionSnowy,
		},
		{
			LocationID:  uuid.MustParse("6e5d4c3b-2a19-4087-96f5-e4d3c2b1a098"),
			CityName:    "São Paulo",
			CountryCode: "BR",
			Temperature: 24,
			Condition:   ConditionStormy,
		},
	}
}

// sampleDailyForecast is the fixed 7-day outlook shown for every location.
func sampleDailyForecast() []DailyForecast {
	return []DailyForecast{
		{Day: "Today", HighTemp: 24, LowTemp: 16, Condition: ConditionPartlyCloudy, PrecipitationChance: 10},
		{Day: "Tuesday", HighTemp: 26, LowTemp: 17, Condition: ConditionSunny, PrecipitationChance: 0},
		{Day: "Wednesday", HighTemp: 23, LowTemp: 15, Condition: ConditionCloudy, PrecipitationChance: 20},
		{Day: "Thursday", HighTemp: 20, LowTemp: 14, Condition: ConditionRainy, PrecipitationChance: 70},
		{Day: "Friday", HighTemp: 18, LowTemp: 12, Condition: ConditionStormy, PrecipitationChance: 85},
		{Day: "Saturday", HighTemp: 21, LowTemp: 13, Condition: ConditionPartlyCloudy, PrecipitationChance: 25},
		{Day: "Sunday", HighTemp: 25, LowTemp: 16, Condition: ConditionSunny, PrecipitationChance: 5},
	}
}

// sampleWeatherDetails is the static detail card shown under the forecast.
func sampleWeatherDetails() WeatherDetails {
	return WeatherDetails{
		Humidity:   68,
		WindSpeed:  12.5,
		UVIndex:    5,
		Visibility: 10.0,
		Pressure:   1013,
		DewPoint:   14,
	}
}
