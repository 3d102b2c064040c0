package certification

import (
	"context"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
)

type CertificationRepository interface {
	Create(ctx context.Context, c *domain.Certification) error
	GetByID(ctx context.Context, id int64) (*domain.Certification, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Certification, error)
	ListByStatus(ctx context.Context, status domain.CertificationStatus) ([]domain.Certification, error)
	Update(ctx context.Context, c *domain.Certification) error
	Delete(ctx context.Context, id int64) error
}

type ActorGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
}

type EventPublisher interface {
	Publish(e events.Event)
}
