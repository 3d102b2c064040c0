package domain

import "time"

type ServiceCategory string

const (
	CategoryPlumbing    ServiceCategory = "plumbing"
	CategoryElectrical  ServiceCategory = "electrical"
	CategoryCleaning    ServiceCategory = "cleaning"
	CategoryCarpentry   ServiceCategory = "carpentry"
	CategoryPainting    ServiceCategory = "painting"
	CategoryGardening   ServiceCategory = "gardening"
	CategoryAppliances  ServiceCategory = "appliances"
	CategoryOther       ServiceCategory = "other"
)

// Service is a catalog entry. Name is unique; technicians advertise it
// through an Offering with their own base rate.
type Service struct {
	ID             int64           `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"uniqueIndex" validate:"required"`
	Description    string          `json:"description,omitempty" gorm:"type:text"`
	Category       ServiceCategory `json:"category"`
	SuggestedPrice float64         `json:"suggested_price"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Offering links a technician to a service at that technician's base rate.
// At most one offering per (technician, service) pair.
type Offering struct {
	TechnicianID int64     `json:"technician_id" gorm:"primaryKey"`
	ServiceID    int64     `json:"service_id" gorm:"primaryKey"`
	BaseRate     float64   `json:"base_rate"`
	CreatedAt    time.Time `json:"created_at"`
}
