package auth

import (
	"context"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
)

// ActorRepository defines the persistence surface the auth service needs.
type ActorRepository interface {
	Create(ctx context.Context, a *domain.Actor) error
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Actor, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, a *domain.Actor) error
	List(ctx context.Context, role domain.Role, limit, offset int) ([]domain.Actor, error)
	Delete(ctx context.Context, id int64) error
	CreateTechnicianProfile(ctx context.Context, p *domain.TechnicianProfile) error
	GetTechnicianProfile(ctx context.Context, actorID int64) (*domain.TechnicianProfile, error)
	SaveTechnicianProfile(ctx context.Context, p *domain.TechnicianProfile) error
	CreateAdminDetail(ctx context.Context, d *domain.AdminDetail) error
}

// TokenIssuer issues signed access tokens.
type TokenIssuer interface {
	GenerateToken(userID int64, email, role string) (string, error)
}

// EventPublisher hands committed facts to the in-process bus.
type EventPublisher interface {
	Publish(e events.Event)
}
