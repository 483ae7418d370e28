package services

import (
	"math"
	"regexp"

	"delivery-ops-service/internal/domain"
)

// startTimePattern is the wire-compatible HH:MM check. It is pattern-based,
// not calendar-aware: hours 24-29 pass (e.g. "29:00"). Kept verbatim so
// acceptance behavior does not change for existing clients.
var startTimePattern = regexp.MustCompile(`^[0-2][0-9]:[0-5][0-9]$`)

// ValidateRequest normalizes loosely-typed run parameters into
// SimulationParams. Checks run in a fixed order and the first failure wins.
// The inputs are the raw decoded JSON values (nil when the field was
// absent), so type mismatches fail with the field's own message rather
// than a generic decode error.
func ValidateRequest(driversCount, startTime, maxHours any) (domain.SimulationParams, error) {
	if driversCount == nil || startTime == nil || maxHours == nil {
		return domain.SimulationParams{}, &ValidationError{
			Msg: "Missing parameters. Required: driversCount, startTime, maxHours",
		}
	}

	dc, ok := driversCount.(float64)
	if !ok || dc != math.Trunc(dc) || dc <= 0 {
		return domain.SimulationParams{}, &ValidationError{Msg: "driversCount must be a positive integer"}
	}

	mh, ok := maxHours.(float64)
	if !ok {
		return domain.SimulationParams{}, &ValidationError{Msg: "maxHours must be a number"}
	}

	st, _ := startTime.(string)
	if !startTimePattern.MatchString(st) {
		return domain.SimulationParams{}, &ValidationError{
			Msg: `startTime must be in HH:MM 24-hour format (e.g. "08:00")`,
		}
	}

	return domain.SimulationParams{
		DriversCount: int(dc),
		StartTime:    st,
		MaxHours:     mh,
	}, nil
}
