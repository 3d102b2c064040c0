package ticket

type CreateTicketRequest struct {
	ReservationID int64  `json:"reservation_id" binding:"required"`
	PaymentID     *int64 `json:"payment_id"`
	Subject       string `json:"subject" binding:"required,max=100"`
	Description   string `json:"description"`
	Priority      string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category      string `json:"category" binding:"omitempty,oneof=payment service account other"`
}

type AssignRequest struct {
	AdminID int64 `json:"admin_id" binding:"required"`
}
