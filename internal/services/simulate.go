package services

import (
	"context"
	"fmt"
	"math"

	"delivery-ops-service/internal/domain"
	"delivery-ops-service/internal/ports"
)

// RunSimulation executes one delivery simulation run.
//
// It reads a snapshot of drivers and orders, assigns each order to a driver
// under the per-driver capacity ceiling, derives per-order financials and
// folds them into run KPIs. The computation is a pure single pass over the
// order sequence in storage order; the only side effect is one history
// snapshot append at the end, whose failure fails the whole run.
//
// Orders are never reordered and assignment is recomputed from scratch:
// any driver reference already on an order is ignored.
func RunSimulation(
	ctx context.Context,
	params domain.SimulationParams,
	drivers ports.DriverRepository,
	orders ports.OrderRepository,
	history ports.HistoryRepository,
) (*domain.SimulationResult, error) {
	allDrivers, err := drivers.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("run simulation: list drivers: %w", err)
	}

	pool, err := SelectDrivers(allDrivers, params.DriversCount)
	if err != nil {
		return nil, err
	}

	allOrders, err := orders.ListOrdersWithRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("run simulation: list orders: %w", err)
	}

	ledger := make(workloadLedger, len(pool))
	for _, d := range pool {
		ledger[d.ID] = 0
	}

	maxMinutes := params.MaxHours * 60

	var (
		totalProfit   float64
		fuelCostHigh  float64
		fuelCostLow   float64
		onTimeCount   int
		lateCount     int
		assignedCount int
	)
	outcomes := make([]domain.OrderOutcome, 0, len(allOrders))

	for _, o := range allOrders {
		var out domain.OrderOutcome

		switch {
		case o.Route == nil:
			out = evaluateNoRoute(o)

		default:
			d := ledger.pickDriver(pool, o.Route.BaseTimeMinutes, maxMinutes)
			if d == nil {
				out = evaluateUnassigned(o)
			} else {
				ledger.assign(d.ID, o.Route.BaseTimeMinutes)
				out = evaluateAssigned(o, *d)
				assignedCount++
			}

			if o.Route.HighTraffic() {
				fuelCostHigh += out.FuelCost
			} else {
				fuelCostLow += out.FuelCost
			}
		}

		if out.IsLate {
			lateCount++
		} else {
			onTimeCount++
		}
		totalProfit += out.Profit
		outcomes = append(outcomes, out)
	}

	totalDeliveries := len(allOrders)
	efficiencyScore := 0.0
	if totalDeliveries > 0 {
		efficiencyScore = float64(onTimeCount) / float64(totalDeliveries) * 100
	}

	// Rounding happens only here, at KPI assembly, so per-order error does
	// not compound across the run.
	snapshot := &domain.HistorySnapshot{
		StartTime:       params.StartTime,
		TotalProfit:     round2(totalProfit),
		EfficiencyScore: round2(efficiencyScore),
		OnTimeCount:     onTimeCount,
		LateCount:       lateCount,
		FuelCostHigh:    round2(fuelCostHigh),
		FuelCostLow:     round2(fuelCostLow),
	}

	historyID, err := history.AppendSnapshot(ctx, snapshot)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	return &domain.SimulationResult{
		TotalProfit:     snapshot.TotalProfit,
		EfficiencyScore: snapshot.EfficiencyScore,
		OnTimeCount:     onTimeCount,
		LateCount:       lateCount,
		TotalDeliveries: totalDeliveries,
		AssignedCount:   assignedCount,
		FuelCostHigh:    snapshot.FuelCostHigh,
		FuelCostLow:     snapshot.FuelCostLow,
		SavedHistoryID:  historyID,
		Orders:          outcomes,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
