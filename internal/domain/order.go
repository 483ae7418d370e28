package domain

import "time"

// Represents a single customer order.
// Route is the optional attached route; orders without a route cannot be
// scheduled and are evaluated on the no-route path. DriverID is a stale
// hint from previous runs and is ignored by the simulation, which
// recomputes assignment every time.
type Order struct {
	ID        int64
	OrderID   string
	ValueRs   float64
	RouteID   *int64
	DriverID  *int64
	Route     *Route
	CreatedAt time.Time
}
