package services

import (
	"errors"
	"testing"
)

func TestValidateRequestAcceptsFractionalMaxHours(t *testing.T) {
	params, err := ValidateRequest(float64(3), "08:00", 8.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.DriversCount != 3 {
		t.Errorf("DriversCount = %d, want 3", params.DriversCount)
	}
	if params.StartTime != "08:00" {
		t.Errorf("StartTime = %q, want %q", params.StartTime, "08:00")
	}
	if params.MaxHours != 8.5 {
		t.Errorf("MaxHours = %v, want 8.5", params.MaxHours)
	}
}

func TestValidateRequestMissingParameters(t *testing.T) {
	_, err := ValidateRequest(nil, "08:00", float64(8))
	assertValidationError(t, err, "Missing parameters. Required: driversCount, startTime, maxHours")

	_, err = ValidateRequest(float64(3), nil, float64(8))
	assertValidationError(t, err, "Missing parameters. Required: driversCount, startTime, maxHours")

	_, err = ValidateRequest(float64(3), "08:00", nil)
	assertValidationError(t, err, "Missing parameters. Required: driversCount, startTime, maxHours")
}

func TestValidateRequestDriversCount(t *testing.T) {
	_, err := ValidateRequest(float64(0), "08:00", float64(8))
	assertValidationError(t, err, "driversCount must be a positive integer")

	_, err = ValidateRequest(float64(-2), "08:00", float64(8))
	assertValidationError(t, err, "driversCount must be a positive integer")

	_, err = ValidateRequest(2.5, "08:00", float64(8))
	assertValidationError(t, err, "driversCount must be a positive integer")

	// A JSON string is not an integer even when it looks like one.
	_, err = ValidateRequest("3", "08:00", float64(8))
	assertValidationError(t, err, "driversCount must be a positive integer")
}

func TestValidateRequestMaxHoursMustBeNumber(t *testing.T) {
	_, err := ValidateRequest(float64(3), "08:00", "eight")
	assertValidationError(t, err, "maxHours must be a number")
}

func TestValidateRequestStartTimeFormat(t *testing.T) {
	for _, bad := range []string{"8:00", "08:0", "08-00", "ab:cd", "08:61", "30:00", ""} {
		if _, err := ValidateRequest(float64(1), bad, float64(8)); err == nil {
			t.Errorf("startTime %q: expected error, got none", bad)
		}
	}

	// The check is pattern-based, not calendar-aware: hours 24-29 pass.
	// This permissiveness is part of the wire contract.
	for _, ok := range []string{"08:00", "23:59", "00:00", "29:00", "25:30"} {
		if _, err := ValidateRequest(float64(1), ok, float64(8)); err != nil {
			t.Errorf("startTime %q: unexpected error: %v", ok, err)
		}
	}
}

func TestValidateRequestCheckOrder(t *testing.T) {
	// driversCount is checked before maxHours and startTime; the first
	// failure wins even when later fields are also invalid.
	_, err := ValidateRequest(float64(0), "bad", "bad")
	assertValidationError(t, err, "driversCount must be a positive integer")
}

func assertValidationError(t *testing.T, err error, want string) {
	t.Helper()

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Msg != want {
		t.Errorf("message = %q, want %q", vErr.Msg, want)
	}
}
