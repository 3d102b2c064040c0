package certification

import "time"

type CreateCertificationRequest struct {
	TechnicianID int64      `json:"technician_id" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	Institution  string     `json:"institution"`
	IssuedAt     *time.Time `json:"issued_at"`
}
