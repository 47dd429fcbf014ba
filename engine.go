package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// This file implements the weather state engine: the single owner of the
// location catalog, the current selection, and the derived hourly snapshot.
// All mutation goes through SelectLocation, Refresh and Reset; every field
// access is guarded by the engine mutex because both the HTTP handlers and the
// auto-refresh scheduler call in concurrently.

// ErrIndexOutOfRange is returned by SelectLocation for an index outside the
// location list. It signals a caller bug; state is left untouched.
var ErrIndexOutOfRange = errors.New("location index out of range")

// RefreshOutcome describes how a Refresh call ended.
type RefreshOutcome int

const (
	// RefreshCompleted: the simulated delay elapsed and the snapshot was
	// regenerated.
	RefreshCompleted RefreshOutcome = iota
	// RefreshIgnored: another refresh was already in flight. The engine
	// deliberately ignores re-entrant calls rather than queueing them; the
	// in-flight refresh reads the selection at completion time, so a second
	// pass would regenerate from the same inputs.
	RefreshIgnored
	// RefreshCancelled: the context or the engine was cancelled during the
	// delay. The snapshot is left as it was; the loading flag is still
	// cleared.
	RefreshCancelled
)

func (o RefreshOutcome) String() string {
	switch o {
	case RefreshCompleted:
		return "completed"
	case RefreshIgnored:
		return "ignored"
	case RefreshCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("RefreshOutcome(%d)", int(o))
}

type Engine struct {
	mu        sync.Mutex
	locations []Location
	selected  int
	snapshot  []HourlyForecast
	revision  uint64
	loading   bool

	gen    *ForecastGenerator
	clock  Clock
	delay  time.Duration
	logger *slog.Logger

	// done is closed by Close. An in-flight refresh bound to it resolves as
	// cancelled instead of mutating a torn-down engine.
	done      chan struct{}
	closeOnce sync.Once
}

// NewEngine builds an engine over the given catalog with the first location
// selected and an initial snapshot already generated. The catalog must be
// non-empty; the engine has no empty state to fall back to.
func NewEngine(locations []Location, gen *ForecastGenerator, clock Clock, delay time.Duration, logger *slog.Logger) *Engine {
	if len(locations) == 0 {
		panic("engine requires at least one location")
	}
	e := &Engine{
		locations: locations,
		gen:       gen,
		clock:     clock,
		delay:     delay,
		logger:    logger,
		done:      make(chan struct{}),
	}
	e.snapshot = gen.Hourly(locations[0].Temperature, locations[0].Condition)
	return e
}

// Close cancels any in-flight refresh. Further refreshes resolve as cancelled.
func (e *Engine) Close() {
	e.closeOnce.Do(func() { close(e.done) })
}

// Locations returns a copy of the catalog.
func (e *Engine) Locations() []Location {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Location, len(e.locations))
	copy(out, e.locations)
	return out
}

// SelectedIndex returns the index of the currently selected location.
func (e *Engine) SelectedIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// Loading reports whether a refresh is in flight.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Snapshot returns the current state: selected location, a copy of the hourly
// forecast, the snapshot revision and the loading flag.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	hourly := make([]HourlyForecast, len(e.snapshot))
	copy(hourly, e.snapshot)
	return Snapshot{
		Location: e.locations[e.selected],
		Hourly:   hourly,
		Revision: e.revision,
		Loading:  e.loading,
	}
}

// LocationIndexByName resolves a city name to its catalog index. Matching is
// case- and diacritic-insensitive so "wrocław" and "Wroclaw" hit the same
// entry.
func (e *Engine) LocationIndexByName(name string) (int, bool) {
	needle, err := normalizeCityName(name)
	if err != nil {
		return 0, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, loc := range e.locations {
		alias, err := normalizeCityName(loc.CityName)
		if err != nil {
			continue
		}
		if alias == needle {
			return i, true
		}
	}
	return 0, false
}

// Preview generates a one-off forecast for the given catalog entry without
// touching the selection or the stored snapshot.
func (e *Engine) Preview(index int) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.locations) {
		return Snapshot{}, fmt.Errorf("%w: %d (have %d locations)", ErrIndexOutOfRange, index, len(e.locations))
	}
	loc := e.locations[index]
	return Snapshot{
		Location: loc,
		Hourly:   e.gen.Hourly(loc.Temperature, loc.Condition),
	}, nil
}

// SelectLocation switches the selection and synchronously regenerates the
// hourly snapshot from the new location's temperature and condition. An
// out-of-range index returns ErrIndexOutOfRange and changes nothing.
func (e *Engine) SelectLocation(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.locations) {
		return fmt.Errorf("%w: %d (have %d locations)", ErrIndexOutOfRange, index, len(e.locations))
	}
	e.selected = index
	e.regenerateLocked()
	e.logger.Debug("location selected", "index", index, "city", e.locations[index].CityName)
	return nil
}

// Refresh simulates a pull-to-refresh: it flips loading on, waits out the
// configured delay on the injected clock, regenerates the snapshot for
// whichever location is selected at completion time, and flips loading off.
// The flag is cleared on every path out, including cancellation. Blocks for
// the duration of the delay; use StartRefresh from request handlers.
func (e *Engine) Refresh(ctx context.Context) RefreshOutcome {
	if !e.beginRefresh() {
		refreshesTotal.WithLabelValues(RefreshIgnored.String()).Inc()
		return RefreshIgnored
	}
	return e.finishRefresh(ctx)
}

// StartRefresh begins a refresh and completes it on a background goroutine.
// Returns false if one was already in flight.
func (e *Engine) StartRefresh(ctx context.Context) bool {
	if !e.beginRefresh() {
		refreshesTotal.WithLabelValues(RefreshIgnored.String()).Inc()
		return false
	}
	go e.finishRefresh(ctx)
	return true
}

func (e *Engine) beginRefresh() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loading {
		return false
	}
	e.loading = true
	return true
}

func (e *Engine) finishRefresh(ctx context.Context) RefreshOutcome {
	defer func() {
		e.mu.Lock()
		e.loading = false
		e.mu.Unlock()
	}()

	select {
	case <-e.clock.After(e.delay):
	case <-ctx.Done():
		e.logger.Debug("refresh cancelled", "reason", ctx.Err())
		refreshesTotal.WithLabelValues(RefreshCancelled.String()).Inc()
		return RefreshCancelled
	case <-e.done:
		e.logger.Debug("refresh cancelled", "reason", "engine closed")
		refreshesTotal.WithLabelValues(RefreshCancelled.String()).Inc()
		return RefreshCancelled
	}

	e.mu.Lock()
	e.regenerateLocked()
	city := e.locations[e.selected].CityName
	e.mu.Unlock()

	e.logger.Debug("refresh completed", "city", city)
	refreshesTotal.WithLabelValues(RefreshCompleted.String()).Inc()
	return RefreshCompleted
}

// Reset restores the initial state: first location selected, fresh snapshot.
// Dev-mode affordance, mirrors a view teardown and re-activation.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = 0
	e.regenerateLocked()
}

// regenerateLocked replaces the snapshot wholesale and bumps the revision.
// Callers must hold e.mu.
func (e *Engine) regenerateLocked() {
	loc := e.locations[e.selected]
	e.snapshot = e.gen.Hourly(loc.Temperature, loc.Condition)
	e.revision++
}
