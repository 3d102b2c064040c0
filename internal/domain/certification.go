package domain

import "time"

type CertificationStatus string

const (
	CertificationPending   CertificationStatus = "pending"
	CertificationValidated CertificationStatus = "validated"
	CertificationRejected  CertificationStatus = "rejected"
)

// Certification is a credential a technician submits for admin validation.
type Certification struct {
	ID           int64               `json:"id" gorm:"primaryKey"`
	TechnicianID int64               `json:"technician_id" validate:"required"`
	Name         string              `json:"name" validate:"required"`
	Institution  string              `json:"institution,omitempty"`
	IssuedAt     *time.Time          `json:"issued_at,omitempty"`
	ValidatedBy  *int64              `json:"validated_by,omitempty"`
	Status       CertificationStatus `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
