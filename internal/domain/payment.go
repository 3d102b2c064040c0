package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

// Payment is a ledger entry against a reservation. Its status machine is
// independent of the reservation's; amounts are caller-supplied and are not
// reconciled against the offering's base rate.
type Payment struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	ReservationID int64         `json:"reservation_id" gorm:"index" validate:"required"`
	Amount        float64       `json:"amount" validate:"gte=0"`
	PaymentDate   time.Time     `json:"payment_date"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentFailed, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}
