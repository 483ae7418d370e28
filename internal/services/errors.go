package services

import "fmt"

// Malformed or missing run parameters. Surfaced to the caller immediately,
// never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Requested driver count exceeds the drivers available for the run.
// No partial run is attempted.
type CapacityError struct {
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("driversCount (%d) exceeds available drivers (%d)", e.Requested, e.Available)
}

// The history append failed after the run computed. The whole run is
// reported as failed: a successful run is always recorded.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist simulation history: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
