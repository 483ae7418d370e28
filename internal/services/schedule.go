package services

import (
	"sort"

	"delivery-ops-service/internal/domain"
)

// workloadLedger maps driver id to minutes assigned within a single run.
// It is created at run start, owned exclusively by that run, and discarded
// with it; it is never shared across runs.
type workloadLedger map[int64]float64

// pickDriver returns the first driver able to take baseTimeMinutes without
// pushing its ledger total past maxMinutes, or nil when no driver fits.
//
// The pool is re-sorted by accumulated minutes for every order (stable, so
// ties keep selection order), reflecting the latest ledger state. This is a
// greedy least-loaded-first, first-fit policy: deterministic given the
// order sequence, not globally optimal. Capacity is a hard constraint.
func (l workloadLedger) pickDriver(pool []domain.RunDriver, baseTimeMinutes, maxMinutes float64) *domain.RunDriver {
	byLoad := make([]domain.RunDriver, len(pool))
	copy(byLoad, pool)
	sort.SliceStable(byLoad, func(i, j int) bool {
		return l[byLoad[i].ID] < l[byLoad[j].ID]
	})

	for i := range byLoad {
		if l[byLoad[i].ID]+baseTimeMinutes <= maxMinutes {
			d := byLoad[i]
			return &d
		}
	}

	return nil
}

// assign books minutes against a driver. Call only after pickDriver
// accepted the order, so the ledger never exceeds the ceiling.
func (l workloadLedger) assign(driverID int64, minutes float64) {
	l[driverID] += minutes
}
