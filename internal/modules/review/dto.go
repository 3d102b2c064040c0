package review

type CreateReviewRequest struct {
	ReservationID int64  `json:"reservation_id" binding:"required"`
	Comment       string `json:"comment"`
	Rating        int    `json:"rating" binding:"required,gte=1,lte=5"`
}

type UpdateReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
}

type AverageRatingResponse struct {
	TechnicianID  int64   `json:"technician_id"`
	AverageRating float64 `json:"average_rating"`
}
