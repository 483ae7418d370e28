package domain

import "strings"

// Represents a delivery route with its nominal transit characteristics.
// BaseTimeMinutes is the transit time with no fatigue or traffic adjustment.
type Route struct {
	ID              int64
	RouteID         string
	DistanceKm      float64
	TrafficLevel    string
	BaseTimeMinutes float64
}

// Report whether the route runs in high traffic.
// Only the literal level "high" (any casing) triggers the fuel surcharge
// and the high-traffic fuel bucket; Medium and Low are treated alike.
func (r Route) HighTraffic() bool {
	return strings.EqualFold(r.TrafficLevel, "high")
}
