package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationRejected  ReservationStatus = "rejected"
	// in_progress and no_show are declared states reserved for future use;
	// no operation currently transitions into them.
	ReservationInProgress ReservationStatus = "in_progress"
	ReservationCompleted  ReservationStatus = "completed"
	ReservationCancelled  ReservationStatus = "cancelled"
	ReservationNoShow     ReservationStatus = "no_show"
)

// Reservation is a customer's booking of a technician offering. It holds the
// ids of both parties directly; payments, review, tickets and chats reference
// the reservation id rather than being navigated from it.
type Reservation struct {
	ID              int64             `json:"id" gorm:"primaryKey"`
	CustomerID      int64             `json:"customer_id" validate:"required"`
	TechnicianID    int64             `json:"technician_id" validate:"required"`
	ServiceID       int64             `json:"service_id" validate:"required"`
	ReservationDate time.Time         `json:"reservation_date"` // day the booking was made
	ServiceDate     time.Time         `json:"service_date"`     // requested day of service
	StartTime       string            `json:"start_time"`       // HH:MM
	EndTime         *string           `json:"end_time,omitempty"` // set on completion only
	Address         string            `json:"address"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (s ReservationStatus) Terminal() bool {
	switch s {
	case ReservationRejected, ReservationCancelled, ReservationCompleted, ReservationNoShow:
		return true
	}
	return false
}
