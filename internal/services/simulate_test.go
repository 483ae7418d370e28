package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"delivery-ops-service/internal/domain"
	"delivery-ops-service/internal/ports"
)

type fakeDriverRepo struct {
	ports.DriverRepository
	drivers []*domain.Driver
}

func (f *fakeDriverRepo) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return f.drivers, nil
}

type fakeOrderRepo struct {
	ports.OrderRepository
	orders []*domain.Order
	called bool
}

func (f *fakeOrderRepo) ListOrdersWithRoutes(ctx context.Context) ([]*domain.Order, error) {
	f.called = true
	return f.orders, nil
}

type fakeHistoryRepo struct {
	ports.HistoryRepository
	appended []*domain.HistorySnapshot
	err      error
}

func (f *fakeHistoryRepo) AppendSnapshot(ctx context.Context, s *domain.HistorySnapshot) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.appended = append(f.appended, s)
	return int64(len(f.appended)), nil
}

func runWith(t *testing.T, drivers []*domain.Driver, orders []*domain.Order, params domain.SimulationParams) (*domain.SimulationResult, *fakeHistoryRepo) {
	t.Helper()

	history := &fakeHistoryRepo{}
	result, err := RunSimulation(
		context.Background(),
		params,
		&fakeDriverRepo{drivers: drivers},
		&fakeOrderRepo{orders: orders},
		history,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result, history
}

func TestRunSimulationFatiguedDriverLate(t *testing.T) {
	drivers := []*domain.Driver{
		{ID: 1, Name: "Amit", CurrentShiftHours: 9, Past7DayHours: 0},
	}
	orders := []*domain.Order{
		{ID: 1, OrderID: "ORD1", ValueRs: 2000, Route: &domain.Route{
			ID: 1, RouteID: "RT1", BaseTimeMinutes: 100, DistanceKm: 10, TrafficLevel: "Low",
		}},
	}

	result, _ := runWith(t, drivers, orders, domain.SimulationParams{
		DriversCount: 1, StartTime: "08:00", MaxHours: 8,
	})

	out := result.Orders[0]
	if out.AssignedTo == nil || *out.AssignedTo != 1 {
		t.Fatalf("expected assignment to driver 1, got %+v", out)
	}
	if out.DeliveryTime != 130 {
		t.Errorf("DeliveryTime = %v, want 130 (fatigue x1.3)", out.DeliveryTime)
	}
	if !out.IsLate {
		t.Error("expected late delivery (130 > 110 allowed)")
	}
	if out.Penalty != 50 || out.Bonus != 0 {
		t.Errorf("penalty/bonus = %v/%v, want 50/0", out.Penalty, out.Bonus)
	}
	if out.FuelCost != 50 {
		t.Errorf("FuelCost = %v, want 50", out.FuelCost)
	}
	if out.Profit != 1900 {
		t.Errorf("Profit = %v, want 1900", out.Profit)
	}

	if result.OnTimeCount != 0 || result.LateCount != 1 {
		t.Errorf("onTime/late = %d/%d, want 0/1", result.OnTimeCount, result.LateCount)
	}
	if result.FuelCostLow != 50 || result.FuelCostHigh != 0 {
		t.Errorf("fuel low/high = %v/%v, want 50/0", result.FuelCostLow, result.FuelCostHigh)
	}
	if result.TotalProfit != 1900 {
		t.Errorf("TotalProfit = %v, want 1900", result.TotalProfit)
	}
	if result.EfficiencyScore != 0 {
		t.Errorf("EfficiencyScore = %v, want 0", result.EfficiencyScore)
	}
}

func TestRunSimulationOnTimeHighValueBonus(t *testing.T) {
	drivers := []*domain.Driver{
		{ID: 1, Name: "Priya", CurrentShiftHours: 5},
	}
	orders := []*domain.Order{
		{ID: 1, OrderID: "ORD1", ValueRs: 1500, Route: &domain.Route{
			ID: 1, RouteID: "RT2", BaseTimeMinutes: 50, DistanceKm: 20, TrafficLevel: "High",
		}},
	}

	result, _ := runWith(t, drivers, orders, domain.SimulationParams{
		DriversCount: 1, StartTime: "09:00", MaxHours: 8,
	})

	out := result.Orders[0]
	if out.DeliveryTime != 50 {
		t.Errorf("DeliveryTime = %v, want 50 (no fatigue)", out.DeliveryTime)
	}
	if out.IsLate {
		t.Error("expected on-time delivery (50 <= 60 allowed)")
	}
	if out.Bonus != 150 {
		t.Errorf("Bonus = %v, want 150 (10%% of 1500)", out.Bonus)
	}
	if out.FuelCost != 140 {
		t.Errorf("FuelCost = %v, want 140 (20*5 + 20*2 high-traffic)", out.FuelCost)
	}
	if out.Profit != 1510 {
		t.Errorf("Profit = %v, want 1510", out.Profit)
	}

	if result.OnTimeCount != 1 || result.LateCount != 0 {
		t.Errorf("onTime/late = %d/%d, want 1/0", result.OnTimeCount, result.LateCount)
	}
	if result.FuelCostHigh != 140 || result.FuelCostLow != 0 {
		t.Errorf("fuel high/low = %v/%v, want 140/0", result.FuelCostHigh, result.FuelCostLow)
	}
	if result.EfficiencyScore != 100 {
		t.Errorf("EfficiencyScore = %v, want 100", result.EfficiencyScore)
	}
}

func TestRunSimulationOrderWithoutRoute(t *testing.T) {
	drivers := []*domain.Driver{{ID: 1, Name: "Rohit"}}
	orders := []*domain.Order{
		{ID: 1, OrderID: "ORD1", ValueRs: 800},
	}

	result, _ := runWith(t, drivers, orders, domain.SimulationParams{
		DriversCount: 1, StartTime: "08:00", MaxHours: 8,
	})

	out := result.Orders[0]
	if out.Reason != "no-route" {
		t.Errorf("Reason = %q, want %q", out.Reason, "no-route")
	}
	if out.AssignedTo != nil {
		t.Errorf("expected no assignment, got driver %d", *out.AssignedTo)
	}
	if out.Profit != 750 {
		t.Errorf("Profit = %v, want 750 (value - penalty, no fuel)", out.Profit)
	}
	if result.LateCount != 1 {
		t.Errorf("LateCount = %d, want 1", result.LateCount)
	}
	if result.FuelCostHigh != 0 || result.FuelCostLow != 0 {
		t.Errorf("fuel buckets = %v/%v, want 0/0", result.FuelCostHigh, result.FuelCostLow)
	}
	if result.AssignedCount != 0 {
		t.Errorf("AssignedCount = %d, want 0", result.AssignedCount)
	}
}

func TestRunSimulationCapacityExhaustion(t *testing.T) {
	drivers := []*domain.Driver{{ID: 1, Name: "Sunita", CurrentShiftHours: 2}}
	longRoute := &domain.Route{ID: 1, RouteID: "RT1", BaseTimeMinutes: 300, DistanceKm: 10, TrafficLevel: "Low"}
	orders := []*domain.Order{
		{ID: 1, OrderID: "ORD1", ValueRs: 600, Route: longRoute},
		{ID: 2, OrderID: "ORD2", ValueRs: 500, Route: longRoute},
	}

	// 8h ceiling = 480 min: the first 300-minute order fits, the second
	// would reach 600 and must be left unassigned, never dropped.
	result, _ := runWith(t, drivers, orders, domain.SimulationParams{
		DriversCount: 1, StartTime: "08:00", MaxHours: 8,
	})

	if result.AssignedCount != 1 {
		t.Fatalf("AssignedCount = %d, want 1", result.AssignedCount)
	}
	if len(result.Orders) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(result.Orders))
	}

	second := result.Orders[1]
	if second.AssignedTo != nil {
		t.Fatalf("second order should be unassigned, got driver %d", *second.AssignedTo)
	}
	if !second.IsLate {
		t.Error("unassigned order must count as late")
	}
	if second.FuelCost != 50 {
		t.Errorf("unassigned FuelCost = %v, want 50 (fuel still burned)", second.FuelCost)
	}
	if second.Bonus != 0 {
		t.Errorf("unassigned Bonus = %v, want 0", second.Bonus)
	}
	if second.Profit != 400 {
		t.Errorf("unassigned Profit = %v, want 400 (500 - 50 - 50)", second.Profit)
	}

	// Fuel split covers every routed order, assigned or not.
	if result.FuelCostLow != 100 {
		t.Errorf("FuelCostLow = %v, want 100", result.FuelCostLow)
	}
}

func TestRunSimulationConservation(t *testing.T) {
	drivers := []*domain.Driver{
		{ID: 1, CurrentShiftHours: 9},
		{ID: 2, CurrentShiftHours: 3},
	}
	orders := []*domain.Order{
		{ID: 1, OrderID: "A", ValueRs: 1200, Route: &domain.Route{ID: 1, BaseTimeMinutes: 60, DistanceKm: 5, TrafficLevel: "Medium"}},
		{ID: 2, OrderID: "B", ValueRs: 300},
		{ID: 3, OrderID: "C", ValueRs: 2500, Route: &domain.Route{ID: 2, BaseTimeMinutes: 45, DistanceKm: 12, TrafficLevel: "HIGH"}},
		{ID: 4, OrderID: "D", ValueRs: 900, Route: &domain.Route{ID: 3, BaseTimeMinutes: 500, DistanceKm: 30, TrafficLevel: "low"}},
	}

	result, history := runWith(t, drivers, orders, domain.SimulationParams{
		DriversCount: 2, StartTime: "10:00", MaxHours: 6,
	})

	if result.TotalDeliveries != len(orders) {
		t.Errorf("TotalDeliveries = %d, want %d", result.TotalDeliveries, len(orders))
	}
	if result.OnTimeCount+result.LateCount != result.TotalDeliveries {
		t.Errorf("onTime(%d) + late(%d) != total(%d)",
			result.OnTimeCount, result.LateCount, result.TotalDeliveries)
	}
	if len(result.Orders) != len(orders) {
		t.Errorf("per-order outcomes = %d, want %d", len(result.Orders), len(orders))
	}

	// Fuel split equals the fuel of every routed order: 5*5=25 (medium),
	// 12*7=84 (high), 30*5=150 (low, unassignable at a 360-minute ceiling).
	if result.FuelCostHigh != 84 {
		t.Errorf("FuelCostHigh = %v, want 84", result.FuelCostHigh)
	}
	if result.FuelCostLow != 175 {
		t.Errorf("FuelCostLow = %v, want 175", result.FuelCostLow)
	}

	if len(history.appended) != 1 {
		t.Fatalf("expected exactly one history append, got %d", len(history.appended))
	}
	snap := history.appended[0]
	if snap.TotalProfit != result.TotalProfit || snap.OnTimeCount != result.OnTimeCount {
		t.Errorf("snapshot KPIs diverge from result: %+v vs %+v", snap, result)
	}
	if snap.StartTime != "10:00" {
		t.Errorf("snapshot StartTime = %q, want %q", snap.StartTime, "10:00")
	}
}

func TestRunSimulationDeterminism(t *testing.T) {
	drivers := []*domain.Driver{
		{ID: 1, Name: "A", CurrentShiftHours: 4, Past7DayHours: 10},
		{ID: 2, Name: "B", CurrentShiftHours: 9, Past7DayHours: 10},
		{ID: 3, Name: "C", CurrentShiftHours: 1, Past7DayHours: 5},
	}
	orders := []*domain.Order{
		{ID: 1, OrderID: "A", ValueRs: 1100, Route: &domain.Route{ID: 1, BaseTimeMinutes: 90, DistanceKm: 9, TrafficLevel: "High"}},
		{ID: 2, OrderID: "B", ValueRs: 700, Route: &domain.Route{ID: 2, BaseTimeMinutes: 120, DistanceKm: 14, TrafficLevel: "Low"}},
		{ID: 3, OrderID: "C", ValueRs: 1900, Route: &domain.Route{ID: 3, BaseTimeMinutes: 60, DistanceKm: 6, TrafficLevel: "Medium"}},
	}
	params := domain.SimulationParams{DriversCount: 2, StartTime: "07:30", MaxHours: 4}

	first, _ := runWith(t, drivers, orders, params)
	second, _ := runWith(t, drivers, orders, params)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestRunSimulationRejectsBeforeProcessingOrders(t *testing.T) {
	drivers := &fakeDriverRepo{drivers: []*domain.Driver{{ID: 1}}}
	orders := &fakeOrderRepo{orders: []*domain.Order{{ID: 1, OrderID: "A"}}}
	history := &fakeHistoryRepo{}

	_, err := RunSimulation(context.Background(), domain.SimulationParams{
		DriversCount: 5, StartTime: "08:00", MaxHours: 8,
	}, drivers, orders, history)

	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if orders.called {
		t.Error("orders must not be read when the driver pool is rejected")
	}
	if len(history.appended) != 0 {
		t.Error("no history snapshot may be written for a rejected run")
	}
}

func TestRunSimulationPersistenceFailureFailsRun(t *testing.T) {
	drivers := &fakeDriverRepo{drivers: []*domain.Driver{{ID: 1}}}
	orders := &fakeOrderRepo{orders: []*domain.Order{{ID: 1, OrderID: "A", ValueRs: 100}}}
	history := &fakeHistoryRepo{err: errors.New("disk full")}

	result, err := RunSimulation(context.Background(), domain.SimulationParams{
		DriversCount: 1, StartTime: "08:00", MaxHours: 8,
	}, drivers, orders, history)

	if result != nil {
		t.Fatal("a run whose history append failed must not return a result")
	}

	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if !errors.Is(err, history.err) {
		t.Error("PersistenceError must wrap the underlying append error")
	}
}

func TestRunSimulationEmptyOrders(t *testing.T) {
	drivers := []*domain.Driver{{ID: 1}}

	result, _ := runWith(t, drivers, nil, domain.SimulationParams{
		DriversCount: 1, StartTime: "08:00", MaxHours: 8,
	})

	if result.TotalDeliveries != 0 {
		t.Errorf("TotalDeliveries = %d, want 0", result.TotalDeliveries)
	}
	if result.EfficiencyScore != 0 {
		t.Errorf("EfficiencyScore = %v, want 0 for an empty run", result.EfficiencyScore)
	}
	if result.TotalProfit != 0 {
		t.Errorf("TotalProfit = %v, want 0", result.TotalProfit)
	}
}
