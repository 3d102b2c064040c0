package payment

type CreatePaymentRequest struct {
	ReservationID int64   `json:"reservation_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	Method        string  `json:"method" binding:"required,oneof=cash card transfer"`
}
