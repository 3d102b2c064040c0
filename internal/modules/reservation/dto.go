package reservation

import "fieldserve/internal/domain"

type CreateReservationRequest struct {
	TechnicianID int64  `json:"technician_id" binding:"required"`
	ServiceID    int64  `json:"service_id" binding:"required"`
	ServiceDate  string `json:"service_date" binding:"required"` // YYYY-MM-DD
	StartTime    string `json:"start_time" binding:"required"`   // HH:MM
	Address      string `json:"address" binding:"required"`
}

type UpdateReservationRequest struct {
	ServiceDate *string `json:"service_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Address     *string `json:"address"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending confirmed rejected in_progress completed cancelled no_show"`
}

// ReservationDetails is the read projection; FinalPrice and HasReview are
// derived per read, never stored.
type ReservationDetails struct {
	domain.Reservation
	FinalPrice float64 `json:"final_price"`
	HasReview  bool    `json:"has_review"`
}

type ListResponse struct {
	Items []ReservationDetails `json:"items"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Size  int                  `json:"size"`
}
