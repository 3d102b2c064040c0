package auth

import "fieldserve/internal/domain"

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=customer technician admin"`

	// technician only
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`

	// admin only
	Tier string `json:"tier" binding:"omitempty,oneof=standard super"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Phone       *string   `json:"phone"`
	Description *string   `json:"description"`
	Specialties *[]string `json:"specialties"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	Actor domain.Actor `json:"actor"`
}

type ProfileResponse struct {
	Actor      domain.Actor              `json:"actor"`
	Technician *domain.TechnicianProfile `json:"technician,omitempty"`
}
