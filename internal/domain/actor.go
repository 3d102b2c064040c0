package domain

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

type AdminTier string

const (
	TierStandard AdminTier = "standard"
	TierSuper    AdminTier = "super"
)

// Actor is the single identity record shared by customers, technicians and
// staff. Role-specific data lives in TechnicianProfile / AdminDetail keyed by
// actor id instead of an inheritance hierarchy.
type Actor struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	Enabled      bool      `json:"enabled"`
	RegisterDate time.Time `json:"register_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

type TechnicianProfile struct {
	ActorID     int64    `json:"actor_id" gorm:"primaryKey"`
	Description string   `json:"description,omitempty" gorm:"type:text"`
	Specialties []string `json:"specialties,omitempty" gorm:"serializer:json"`
}

type AdminDetail struct {
	ActorID int64     `json:"actor_id" gorm:"primaryKey"`
	Tier    AdminTier `json:"tier"`
}
