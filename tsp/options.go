// Package tsp: functional configuration for model construction. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants and default namers),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes the produced model or its logs.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Namers must be injective over their domain; the model rejects collisions
//     with qp.ErrDuplicateVariableName / qp.ErrDuplicateConstraintName.
package tsp

import (
	"strconv"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultModelName is the qp.Model name.
	DefaultModelName = "TSP"

	// DefaultBothDirections keeps exactly one orientation per unordered pair
	// in the objective: x(i,a)·x(j,a+1) for i<j.
	DefaultBothDirections = false
)

// DefaultVariableName names x(city, stop) as "x_{city}_{stop}".
func DefaultVariableName(city, stop int) string {
	return "x_" + strconv.Itoa(city) + "_" + strconv.Itoa(stop)
}

// DefaultCityConstraintName names the "city i visited once" row "city_{i}_once".
func DefaultCityConstraintName(city int) string {
	return "city_" + strconv.Itoa(city) + "_once"
}

// DefaultStopConstraintName names the "stop a holds one city" row "one_city_at_stop_{a}".
func DefaultStopConstraintName(stop int) string {
	return "one_city_at_stop_" + strconv.Itoa(stop)
}

// ---------- Internal panic messages ----------

const (
	panicNilVariableNamer = "tsp: WithVariableNamer: namer must be non-nil"
	panicNilCityNamer     = "tsp: WithCityConstraintNamer: namer must be non-nil"
	panicNilStopNamer     = "tsp: WithStopConstraintNamer: namer must be non-nil"
	panicNilLogger        = "tsp: WithLogger: logger must be non-nil"
	panicEmptyModelName   = "tsp: WithModelName: name must be non-empty"
)

// ---------- Public option type ----------

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	modelName      string
	bothDirections bool

	variableNamer func(city, stop int) string
	cityNamer     func(city int) string
	stopNamer     func(stop int) string

	logger *zap.Logger
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		modelName:      DefaultModelName,
		bothDirections: DefaultBothDirections,
		variableNamer:  DefaultVariableName,
		cityNamer:      DefaultCityConstraintName,
		stopNamer:      DefaultStopConstraintName,
		logger:         zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	var o = defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithModelName sets the qp.Model name (used in LP headers and documents).
// Panics on an empty name.
func WithModelName(name string) Option {
	if name == "" {
		panic(panicEmptyModelName)
	}

	return func(o *Options) { o.modelName = name }
}

// WithBothDirections makes the objective emit, for every unordered pair i<j
// and stop a, both x(i,a)·x(j,a+1) and x(j,a)·x(i,a+1). The objective of a
// permutation assignment then equals the closed-tour cost (Instance.TourCost)
// and the term count doubles to N²(N−1).
func WithBothDirections() Option {
	return func(o *Options) { o.bothDirections = true }
}

// WithVariableNamer overrides the x(city, stop) naming scheme.
// Panics on a nil namer.
func WithVariableNamer(namer func(city, stop int) string) Option {
	if namer == nil {
		panic(panicNilVariableNamer)
	}

	return func(o *Options) { o.variableNamer = namer }
}

// WithCityConstraintNamer overrides the names of the "city visited once" rows.
// Panics on a nil namer.
func WithCityConstraintNamer(namer func(city int) string) Option {
	if namer == nil {
		panic(panicNilCityNamer)
	}

	return func(o *Options) { o.cityNamer = namer }
}

// WithStopConstraintNamer overrides the names of the "one city per stop" rows.
// Panics on a nil namer.
func WithStopConstraintNamer(namer func(stop int) string) Option {
	if namer == nil {
		panic(panicNilStopNamer)
	}

	return func(o *Options) { o.stopNamer = namer }
}

// WithLogger routes construction logs (Debug level) to logger.
// The default is zap.NewNop(). Panics on a nil logger.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}
