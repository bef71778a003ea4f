package models

const (
	SlotAvailable = "Available"
	SlotBooked    = "Booked"
)

// TimeSlot is derived from the daily grid on every availability
// query and never persisted.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}
