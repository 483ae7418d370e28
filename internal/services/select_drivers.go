package services

import (
	"sort"

	"delivery-ops-service/internal/domain"
)

// SelectDrivers chooses the pool participating in one run.
//
// Drivers are sorted ascending by past-7-day hours and the first
// driversCount are taken: the least-recently-worked drivers get priority
// for this run's capacity. The sort is stable, so ties keep the input
// (creation) order. Each selected driver is copied into an immutable
// per-run record; the live entities are never touched.
func SelectDrivers(all []*domain.Driver, driversCount int) ([]domain.RunDriver, error) {
	if driversCount > len(all) {
		return nil, &CapacityError{Requested: driversCount, Available: len(all)}
	}

	byRest := make([]*domain.Driver, len(all))
	copy(byRest, all)
	sort.SliceStable(byRest, func(i, j int) bool {
		return byRest[i].Past7DayHours < byRest[j].Past7DayHours
	})

	pool := make([]domain.RunDriver, 0, driversCount)
	for _, d := range byRest[:driversCount] {
		pool = append(pool, domain.RunDriver{
			ID:                d.ID,
			Name:              d.Name,
			CurrentShiftHours: d.CurrentShiftHours,
			Past7DayHours:     d.Past7DayHours,
		})
	}

	return pool, nil
}
