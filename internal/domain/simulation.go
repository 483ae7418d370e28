package domain

import "time"

// Validated run parameters for one simulation.
// StartTime is accepted and recorded but does not influence scheduling.
type SimulationParams struct {
	DriversCount int
	StartTime    string
	MaxHours     float64
}

// Outcome of one order within a run.
// Exactly one of three paths applies: no-route, unassigned (capacity
// exhausted) or assigned. AssignedTo is nil on the first two.
type OrderOutcome struct {
	OrderID      string
	AssignedTo   *int64
	DriverName   string
	Reason       string
	DeliveryTime float64
	BaseTimeMin  float64
	IsLate       bool
	Penalty      float64
	Bonus        float64
	FuelCost     float64
	Profit       float64
}

// Aggregate result of one simulation run.
// Invariant: OnTimeCount + LateCount == TotalDeliveries == len(Orders).
type SimulationResult struct {
	TotalProfit     float64
	EfficiencyScore float64
	OnTimeCount     int
	LateCount       int
	TotalDeliveries int
	AssignedCount   int
	FuelCostHigh    float64
	FuelCostLow     float64
	SavedHistoryID  int64
	Orders          []OrderOutcome
}

// Append-only record of a run's scalar KPIs.
type HistorySnapshot struct {
	ID              int64
	StartTime       string
	TotalProfit     float64
	EfficiencyScore float64
	OnTimeCount     int
	LateCount       int
	FuelCostHigh    float64
	FuelCostLow     float64
	CreatedAt       time.Time
}
