package dto

// SimulationRequest carries the raw run parameters. Fields are decoded
// loosely (any) so the validator can report per-field errors in the
// wire contract's terms instead of a generic decode failure.
type SimulationRequest struct {
	DriversCount any `json:"driversCount"`
	StartTime    any `json:"startTime"`
	MaxHours     any `json:"maxHours"`
}

type FuelBreakdownResponse struct {
	HighTraffic float64 `json:"highTraffic"`
	LowTraffic  float64 `json:"lowTraffic"`
}

type OrderOutcomeResponse struct {
	OrderID      string  `json:"orderId"`
	AssignedTo   *int64  `json:"assignedTo"`
	DriverName   string  `json:"driverName,omitempty"`
	Reason       string  `json:"reason,omitempty"`
	DeliveryTime float64 `json:"deliveryTime"`
	BaseTimeMin  float64 `json:"baseTimeMin"`
	IsLate       bool    `json:"isLate"`
	Penalty      float64 `json:"penalty"`
	Bonus        float64 `json:"bonus"`
	FuelCost     float64 `json:"fuelCost"`
	OrderProfit  float64 `json:"orderProfit"`
}

type SimulationResponse struct {
	TotalProfit     float64                `json:"totalProfit"`
	EfficiencyScore float64                `json:"efficiencyScore"`
	OnTimeCount     int                    `json:"onTimeCount"`
	LateCount       int                    `json:"lateCount"`
	TotalDeliveries int                    `json:"totalDeliveries"`
	AssignedCount   int                    `json:"assignedCount"`
	FuelBreakdown   FuelBreakdownResponse  `json:"fuelBreakdown"`
	SavedHistoryID  int64                  `json:"savedHistoryId"`
	Orders          []OrderOutcomeResponse `json:"orders"`
}

type LatestSimulationResponse struct {
	TotalProfit     float64               `json:"totalProfit"`
	EfficiencyScore float64               `json:"efficiencyScore"`
	OnTimeCount     int                   `json:"onTimeCount"`
	LateCount       int                   `json:"lateCount"`
	FuelBreakdown   FuelBreakdownResponse `json:"fuelBreakdown"`
}
