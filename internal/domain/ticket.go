package domain

import "time"

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

type TicketCategory string

const (
	TicketCategoryPayment TicketCategory = "payment"
	TicketCategoryService TicketCategory = "service"
	TicketCategoryAccount TicketCategory = "account"
	TicketCategoryOther   TicketCategory = "other"
)

// SupportTicket belongs to a reservation and may reference the admin it was
// assigned to and the payment it disputes.
type SupportTicket struct {
	ID            int64          `json:"id" gorm:"primaryKey"`
	ReservationID int64          `json:"reservation_id" gorm:"index" validate:"required"`
	AdminID       *int64         `json:"admin_id,omitempty"`
	PaymentID     *int64         `json:"payment_id,omitempty"`
	Subject       string         `json:"subject" validate:"required,max=100"`
	Description   string         `json:"description,omitempty" gorm:"type:text"`
	Status        TicketStatus   `json:"status"`
	Priority      TicketPriority `json:"priority"`
	Category      TicketCategory `json:"category"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
