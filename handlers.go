package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// This file contains the HTTP handlers for the application. They are a thin
// boundary over the weather state engine: reads return the engine's current
// snapshot shaped for display, writes translate into SelectLocation and
// StartRefresh calls. No handler touches engine fields directly.

// handlerWeather serves the full weather card for the selected location:
// current conditions with icon and gradient, the hourly snapshot, the static
// daily outlook and details, and the loading flag.
//
// With a ?city= query parameter it instead serves a preview for that catalog
// entry without changing the selection, so a client can peek at another city.
// Selected-location responses are memoized per snapshot revision.
func (cfg *apiConfig) handlerWeather(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	if city := r.URL.Query().Get("city"); city != "" {
		index, ok := cfg.engine.LocationIndexByName(city)
		if !ok {
			cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("no location named %q", city), nil)
			return
		}
		snap, err := cfg.engine.Preview(index)
		if err != nil {
			cfg.respondWithError(w, http.StatusInternalServerError, "Error generating preview", err)
			return
		}
		cfg.logger.Debug("weather preview request", "city", snap.Location.CityName)
		cfg.respondWithJSON(w, http.StatusOK, cfg.buildWeatherResponse(snap))
		return
	}

	snap := cfg.engine.Snapshot()
	key := fmt.Sprintf("weather:%s:%d", snap.Location.LocationID, snap.Revision)

	cached, err := cfg.cache.Get(ctx, key)
	if err == nil {
		var response WeatherResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			// The loading flag tracks the engine, not the cached render.
			response.Loading = snap.Loading
			cfg.respondWithJSON(w, http.StatusOK, response)
			return
		}
		cfg.logger.Warn("discarding malformed cache entry", "key", key)
	} else if !errors.Is(err, ErrCacheMiss) {
		cfg.logger.Warn("cache lookup failed", "key", key, "error", err)
	}

	response := cfg.buildWeatherResponse(snap)
	if err := cfg.cache.Set(ctx, key, response, cfg.cacheTTL); err != nil {
		cfg.logger.Warn("could not cache weather response", "key", key, "error", err)
	}
	cfg.respondWithJSON(w, http.StatusOK, response)
}

// handlerLocations serves the location catalog and the selected index.
func (cfg *apiConfig) handlerLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	cfg.respondWithJSON(w, http.StatusOK, LocationsResponse{
		Locations:     cfg.engine.Locations(),
		SelectedIndex: cfg.engine.SelectedIndex(),
	})
}

// handlerSelect switches the selected location. An out-of-range index is a
// client bug and maps to 400; engine state stays as it was.
func (cfg *apiConfig) handlerSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Error parsing request body", err)
		return
	}

	if err := cfg.engine.SelectLocation(req.Index); err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		cfg.respondWithError(w, http.StatusInternalServerError, "Error selecting location", err)
		return
	}
	selectionsTotal.Inc()

	snap := cfg.engine.Snapshot()
	cfg.respondWithJSON(w, http.StatusOK, SelectResponse{
		SelectedIndex: cfg.engine.SelectedIndex(),
		Location:      snap.Location,
	})
}

// handlerRefresh kicks off an asynchronous refresh and reports whether it was
// started or ignored because one was already in flight.
func (cfg *apiConfig) handlerRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	// Deliberately not the request context: the refresh outlives the response
	// and is cancelled by engine teardown instead.
	started := cfg.engine.StartRefresh(context.Background())
	cfg.respondWithJSON(w, http.StatusAccepted, RefreshResponse{
		Started: started,
		Loading: cfg.engine.Loading(),
	})
}

// handlerReset restores the engine's initial state and flushes the snapshot
// cache. Registered only in dev mode.
func (cfg *apiConfig) handlerReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	cfg.engine.Reset()
	if err := cfg.cache.Flush(r.Context()); err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Error flushing cache", err)
		return
	}
	cfg.logger.Debug("engine state reset")
	cfg.respondWithJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// buildWeatherResponse shapes an engine snapshot for display, attaching icon
// and gradient lookups and the static daily forecast and details.
func (cfg *apiConfig) buildWeatherResponse(snap Snapshot) WeatherResponse {
	hourly := make([]HourlyForecastJSON, len(snap.Hourly))
	for i, h := range snap.Hourly {
		hourly[i] = HourlyForecastJSON{
			Hour:                h.Hour,
			Temperature:         h.Temperature,
			Condition:           h.Condition,
			Icon:                h.Condition.Icon(),
			PrecipitationChance: h.PrecipitationChance,
		}
	}

	daily := make([]DailyForecastJSON, len(cfg.dailyForecast))
	for i, d := range cfg.dailyForecast {
		daily[i] = DailyForecastJSON{
			Day:                 d.Day,
			HighTemp:            d.HighTemp,
			LowTemp:             d.LowTemp,
			Condition:           d.Condition,
			Icon:                d.Condition.Icon(),
			PrecipitationChance: d.PrecipitationChance,
		}
	}

	details := WeatherDetailsJSON{
		Humidity:   cfg.weatherDetails.Humidity,
		WindSpeed:  cfg.weatherDetails.WindSpeed,
		UVIndex:    cfg.weatherDetails.UVIndex,
		Visibility: cfg.weatherDetails.Visibility,
		Pressure:   cfg.weatherDetails.Pressure,
		DewPoint:   cfg.weatherDetails.DewPoint,
	}

	return WeatherResponse{
		Location: snap.Location,
		Icon:     snap.Location.Condition.Icon(),
		Gradient: snap.Location.Condition.Gradient(),
		Hourly:   hourly,
		Daily:    daily,
		Details:  details,
		Loading:  snap.Loading,
	}
}
