package auth

import (
	"context"
	"strings"
	"time"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/pkg/apperr"
	"fieldserve/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	actors ActorRepository
	tokens TokenIssuer
	bus    EventPublisher
}

func NewService(actors ActorRepository, tokens TokenIssuer, bus EventPublisher) *Service {
	return &Service{actors: actors, tokens: tokens, bus: bus}
}

// Register creates an actor of the requested role. Email uniqueness is
// checked across all roles, not per role.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.actors.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Actor", "email", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := &domain.Actor{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         domain.Role(req.Role),
		Enabled:      true,
		RegisterDate: time.Now(),
	}
	if err := s.actors.Create(ctx, a); err != nil {
		return nil, err
	}

	switch a.Role {
	case domain.RoleTechnician:
		p := &domain.TechnicianProfile{
			ActorID:     a.ID,
			Description: req.Description,
			Specialties: req.Specialties,
		}
		if err := s.actors.CreateTechnicianProfile(ctx, p); err != nil {
			return nil, err
		}
	case domain.RoleAdmin:
		tier := domain.TierStandard
		if req.Tier == string(domain.TierSuper) {
			tier = domain.TierSuper
		}
		d := &domain.AdminDetail{ActorID: a.ID, Tier: tier}
		if err := s.actors.CreateAdminDetail(ctx, d); err != nil {
			return nil, err
		}
	}

	s.bus.Publish(events.New(events.TypeUserRegistered, events.UserRegistered{
		ActorID:   a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		Role:      a.Role,
	}))

	token, err := s.tokens.GenerateToken(a.ID, a.Email, string(a.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, Actor: *a}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	a, err := s.actors.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !a.Enabled {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(a.ID, a.Email, string(a.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, Actor: *a}, nil
}

func (s *Service) Profile(ctx context.Context, actorID int64) (*ProfileResponse, error) {
	a, err := s.actors.GetByID(ctx, actorID)
	if err != nil {
		return nil, apperr.NotFound("Actor", "id", actorID)
	}

	out := &ProfileResponse{Actor: *a}
	if a.Role == domain.RoleTechnician {
		if p, err := s.actors.GetTechnicianProfile(ctx, actorID); err == nil {
			out.Technician = p
		}
	}
	return out, nil
}

func (s *Service) UpdateProfile(ctx context.Context, actorID int64, req UpdateProfileRequest) (*ProfileResponse, error) {
	a, err := s.actors.GetByID(ctx, actorID)
	if err != nil {
		return nil, apperr.NotFound("Actor", "id", actorID)
	}

	if req.FirstName != nil {
		a.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		a.LastName = *req.LastName
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if fields := validator.Validate(a); fields != nil {
		return nil, apperr.Validation(fields)
	}
	if err := s.actors.Update(ctx, a); err != nil {
		return nil, err
	}

	if a.Role == domain.RoleTechnician && (req.Description != nil || req.Specialties != nil) {
		p, err := s.actors.GetTechnicianProfile(ctx, actorID)
		if err != nil {
			p = &domain.TechnicianProfile{ActorID: actorID}
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Specialties != nil {
			p.Specialties = *req.Specialties
		}
		if err := s.actors.SaveTechnicianProfile(ctx, p); err != nil {
			return nil, err
		}
	}

	return s.Profile(ctx, actorID)
}

func (s *Service) ListActors(ctx context.Context, role string, limit, offset int) ([]domain.Actor, error) {
	return s.actors.List(ctx, domain.Role(role), limit, offset)
}

// DeleteActor removes the actor and its role-specific records. Reservations
// and other history keep their actor ids.
func (s *Service) DeleteActor(ctx context.Context, id int64) error {
	if _, err := s.actors.GetByID(ctx, id); err != nil {
		return apperr.NotFound("Actor", "id", id)
	}
	return s.actors.Delete(ctx, id)
}
