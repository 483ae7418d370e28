package domain

// Represents a delivery driver known to the system.
// CurrentShiftHours is how long the driver has already been on shift today;
// Past7DayHours is a rolling rest indicator used to prioritize rested
// drivers when selecting a simulation pool.
type Driver struct {
	ID                int64
	Name              string
	CurrentShiftHours float64
	Past7DayHours     float64
}

// Immutable per-run copy of a selected driver.
// The simulation reads these values for the whole run and never writes
// back to the live Driver record.
type RunDriver struct {
	ID                int64
	Name              string
	CurrentShiftHours float64
	Past7DayHours     float64
}
