package main

import (
	"github.com/google/uuid"
)

type Location struct {
	LocationID  uuid.UUID `json:"location_id"`
	CityName    string    `json:"city_name"`
	CountryCode string    `json:"country_code"`
	Temperature int       `json:"temperature_c"`
	Condition   Condition `json:"condition"`
	IsCurrent   bool      `json:"is_current_position"`
}

type HourlyForecast struct {
	Hour                string
	Temperature         int
	Condition           Condition
	PrecipitationChance int
}

type DailyForecast struct {
	Day                 string
	HighTemp            int
	LowTemp             int
	Condition           Condition
	PrecipitationChance int
}

type WeatherDetails struct {
	Humidity   int
	WindSpeed  float64
	UVIndex    int
	Visibility float64
	Pressure   int
	DewPoint   int
}

// Snapshot is the engine's externally visible state at a point in time.
// Hourly is a copy; callers can hold it across further engine mutations.
type Snapshot struct {
	Location Location
	Hourly   []HourlyForecast
	Revision uint64
	Loading  bool
}

type HourlyForecastJSON struct {
	Hour                string    `json:"hour"`
	Temperature         int       `json:"temperature_c"`
	Condition           Condition `json:"condition"`
	Icon                string    `json:"icon"`
	PrecipitationChance int       `json:"precipitation_chance"`
}

type DailyForecastJSON struct {
	Day                 string    `json:"day"`
	HighTemp            int       `json:"high_temp_c"`
	LowTemp             int       `json:"low_temp_c"`
	Condition           Condition `json:"condition"`
	Icon                string    `json:"icon"`
	PrecipitationChance int       `json:"precipitation_chance"`
}

type WeatherDetailsJSON struct {
	Humidity   int     `json:"humidity"`
	WindSpeed  float64 `json:"wind_speed_kmh"`
	UVIndex    int     `json:"uv_index"`
	Visibility float64 `json:"visibility_km"`
	Pressure   int     `json:"pressure_hpa"`
	DewPoint   int     `json:"dew_point_c"`
}

type WeatherResponse struct {
	Location Location             `json:"location"`
	Icon     string               `json:"icon"`
	Gradient [2]string            `json:"gradient"`
	Hourly   []HourlyForecastJSON `json:"hourly"`
	Daily    []DailyForecastJSON  `json:"daily"`
	Details  WeatherDetailsJSON   `json:"details"`
	Loading  bool                 `json:"loading"`
}

type LocationsResponse struct {
	Locations     []Location `json:"locations"`
	SelectedIndex int        `json:"selected_index"`
}

type SelectRequest struct {
	Index int `json:"index"`
}

type SelectResponse struct {
	SelectedIndex int      `json:"selected_index"`
	Location      Location `json:"location"`
}

type RefreshResponse struct {
	Started bool `json:"started"`
	Loading bool `json:"loading"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
