package schedule

type CreateSlotRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateSlotRequest struct {
	DayOfWeek *string `json:"day_of_week" binding:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status" binding:"omitempty,oneof=available unavailable"`
}

type AttachRequest struct {
	TechnicianID int64 `json:"technician_id" binding:"required"`
}
