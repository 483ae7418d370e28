package dto

type DriverResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	CurrentShiftHours float64 `json:"currentShiftHours"`
	Past7DayHours     float64 `json:"past7DayHours"`
}

type CreateDriverRequest struct {
	Name              string  `json:"name"`
	CurrentShiftHours float64 `json:"currentShiftHours"`
	Past7DayHours     float64 `json:"past7DayHours"`
}

// Pointer fields: absent fields leave the stored value unchanged.
type UpdateDriverRequest struct {
	Name              *string  `json:"name"`
	CurrentShiftHours *float64 `json:"currentShiftHours"`
	Past7DayHours     *float64 `json:"past7DayHours"`
}
