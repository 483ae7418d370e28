package services

import "delivery-ops-service/internal/domain"

// Business constants of the delivery profit model.
const (
	latePenaltyRs    = 50.0
	graceMinutes     = 10.0
	fatigueThreshold = 8.0 // shift hours beyond which delivery slows down
	fatigueFactor    = 1.3
	bonusThresholdRs = 1000.0
	bonusRate        = 0.10
	fuelRatePerKm    = 5.0
	highTrafficPerKm = 2.0
)

// routeFuelCost prices the fuel for one route: a flat per-km rate plus a
// surcharge per km in high traffic.
func routeFuelCost(r *domain.Route) float64 {
	cost := r.DistanceKm * fuelRatePerKm
	if r.HighTraffic() {
		cost += r.DistanceKm * highTrafficPerKm
	}
	return cost
}

// evaluateNoRoute handles an order with no attached route. It counts as
// late and pays the flat penalty; there is no distance, so no fuel term.
func evaluateNoRoute(o *domain.Order) domain.OrderOutcome {
	return domain.OrderOutcome{
		OrderID: o.OrderID,
		Reason:  "no-route",
		IsLate:  true,
		Penalty: latePenaltyRs,
		Profit:  o.ValueRs - latePenaltyRs,
	}
}

// evaluateUnassigned handles an order no driver could take within the run's
// capacity ceiling. It counts as late, still burns fuel on its route, and
// can never earn a bonus.
func evaluateUnassigned(o *domain.Order) domain.OrderOutcome {
	fuel := routeFuelCost(o.Route)
	return domain.OrderOutcome{
		OrderID:     o.OrderID,
		BaseTimeMin: o.Route.BaseTimeMinutes,
		IsLate:      true,
		Penalty:     latePenaltyRs,
		FuelCost:    fuel,
		Profit:      o.ValueRs - latePenaltyRs - fuel,
	}
}

// evaluateAssigned handles an order taken by a driver.
//
// Fatigue reads the driver's shift hours captured at selection time: a
// driver over the threshold delivers 30% slower. The value does not grow
// as the driver accumulates assignments within the run. Lateness compares
// the effective time against the base time plus a fixed grace window.
func evaluateAssigned(o *domain.Order, d domain.RunDriver) domain.OrderOutcome {
	base := o.Route.BaseTimeMinutes

	deliveryTime := base
	if d.CurrentShiftHours > fatigueThreshold {
		deliveryTime *= fatigueFactor
	}

	allowedTime := base + graceMinutes
	isLate := deliveryTime > allowedTime

	var penalty, bonus float64
	if isLate {
		penalty = latePenaltyRs
	} else if o.ValueRs > bonusThresholdRs {
		bonus = o.ValueRs * bonusRate
	}

	fuel := routeFuelCost(o.Route)
	driverID := d.ID

	return domain.OrderOutcome{
		OrderID:      o.OrderID,
		AssignedTo:   &driverID,
		DriverName:   d.Name,
		DeliveryTime: deliveryTime,
		BaseTimeMin:  base,
		IsLate:       isLate,
		Penalty:      penalty,
		Bonus:        bonus,
		FuelCost:     fuel,
		Profit:       o.ValueRs + bonus - penalty - fuel,
	}
}
