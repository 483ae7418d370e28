package services

import (
	"errors"
	"testing"

	"delivery-ops-service/internal/domain"
)

func TestSelectDriversPrefersRested(t *testing.T) {
	all := []*domain.Driver{
		{ID: 1, Name: "A", Past7DayHours: 50},
		{ID: 2, Name: "B", Past7DayHours: 10},
		{ID: 3, Name: "C", Past7DayHours: 30},
	}

	pool, err := SelectDrivers(all, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pool) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(pool))
	}
	if pool[0].ID != 2 || pool[1].ID != 3 {
		t.Errorf("expected drivers [2 3], got [%d %d]", pool[0].ID, pool[1].ID)
	}
}

func TestSelectDriversStableTies(t *testing.T) {
	all := []*domain.Driver{
		{ID: 7, Past7DayHours: 20},
		{ID: 3, Past7DayHours: 20},
		{ID: 9, Past7DayHours: 20},
	}

	pool, err := SelectDrivers(all, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Equal rest keeps input order.
	want := []int64{7, 3, 9}
	for i, id := range want {
		if pool[i].ID != id {
			t.Errorf("pool[%d].ID = %d, want %d", i, pool[i].ID, id)
		}
	}
}

func TestSelectDriversDoesNotMutateInput(t *testing.T) {
	all := []*domain.Driver{
		{ID: 1, Past7DayHours: 50},
		{ID: 2, Past7DayHours: 10},
	}

	if _, err := SelectDrivers(all, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("input slice reordered: [%d %d]", all[0].ID, all[1].ID)
	}
}

func TestSelectDriversCapacityExceeded(t *testing.T) {
	all := []*domain.Driver{{ID: 1}, {ID: 2}}

	_, err := SelectDrivers(all, 3)

	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if capErr.Requested != 3 || capErr.Available != 2 {
		t.Errorf("CapacityError = %+v, want requested=3 available=2", capErr)
	}
	if capErr.Error() != "driversCount (3) exceeds available drivers (2)" {
		t.Errorf("unexpected message: %q", capErr.Error())
	}
}
