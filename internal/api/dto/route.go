package dto

type RouteResponse struct {
	ID              int64   `json:"id"`
	RouteID         string  `json:"routeId"`
	DistanceKm      float64 `json:"distanceKm"`
	TrafficLevel    string  `json:"trafficLevel"`
	BaseTimeMinutes float64 `json:"baseTimeMinutes"`
}

type CreateRouteRequest struct {
	RouteID         string  `json:"routeId"`
	DistanceKm      float64 `json:"distanceKm"`
	TrafficLevel    string  `json:"trafficLevel"`
	BaseTimeMinutes float64 `json:"baseTimeMinutes"`
}

// Pointer fields: absent fields leave the stored value unchanged.
type UpdateRouteRequest struct {
	RouteID         *string  `json:"routeId"`
	DistanceKm      *float64 `json:"distanceKm"`
	TrafficLevel    *string  `json:"trafficLevel"`
	BaseTimeMinutes *float64 `json:"baseTimeMinutes"`
}
