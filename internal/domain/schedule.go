package domain

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotUnavailable SlotStatus = "unavailable"
)

// AvailabilitySlot is a weekly day/time window a technician publishes.
// Slots may overlap; no invariant is enforced on that.
type AvailabilitySlot struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	DayOfWeek Weekday    `json:"day_of_week"`
	StartTime string     `json:"start_time"` // HH:MM
	EndTime   string     `json:"end_time"`   // HH:MM
	Status    SlotStatus `json:"status"`
}

// TechnicianSlot joins technicians to slots (many-to-many).
type TechnicianSlot struct {
	TechnicianID int64 `json:"technician_id" gorm:"primaryKey"`
	SlotID       int64 `json:"slot_id" gorm:"primaryKey"`
}
