package domain

import "time"

type ReviewStatus string

const (
	ReviewActive  ReviewStatus = "active"
	ReviewEdited  ReviewStatus = "edited"
	ReviewDeleted ReviewStatus = "deleted" // soft flag, row retained
)

// Review is a one-to-one record against a completed reservation.
type Review struct {
	ID            int64        `json:"id" gorm:"primaryKey"`
	ReservationID int64        `json:"reservation_id" gorm:"uniqueIndex"`
	Comment       string       `json:"comment,omitempty" gorm:"type:text"`
	Rating        int          `json:"rating" validate:"gte=1,lte=5"`
	Status        ReviewStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
