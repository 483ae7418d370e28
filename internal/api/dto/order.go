package dto

type OrderResponse struct {
	ID       int64   `json:"id"`
	OrderID  string  `json:"orderId"`
	ValueRs  float64 `json:"valueRs"`
	RouteID  *int64  `json:"routeId"`
	DriverID *int64  `json:"driverId"`
}

type CreateOrderRequest struct {
	OrderID  string  `json:"orderId"`
	ValueRs  float64 `json:"valueRs"`
	RouteID  *int64  `json:"routeId"`
	DriverID *int64  `json:"driverId"`
}

// Pointer fields: absent fields leave the stored value unchanged.
type UpdateOrderRequest struct {
	OrderID  *string  `json:"orderId"`
	ValueRs  *float64 `json:"valueRs"`
	RouteID  *int64   `json:"routeId"`
	DriverID *int64   `json:"driverId"`
}
