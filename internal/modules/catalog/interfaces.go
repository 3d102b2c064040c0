package catalog

import (
	"context"

	"fieldserve/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByName(ctx context.Context, name string) (*domain.Service, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Service, error)
	ListByCategory(ctx context.Context, c domain.ServiceCategory) ([]domain.Service, error)
	CountByCategory(ctx context.Context, c domain.ServiceCategory) (int64, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

type OfferingRepository interface {
	Create(ctx context.Context, o *domain.Offering) error
	Get(ctx context.Context, technicianID, serviceID int64) (*domain.Offering, error)
	Exists(ctx context.Context, technicianID, serviceID int64) (bool, error)
	List(ctx context.Context) ([]domain.Offering, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Offering, error)
	UpdateBaseRate(ctx context.Context, technicianID, serviceID int64, rate float64) error
	Delete(ctx context.Context, technicianID, serviceID int64) error
}

// ActorGetter resolves actors when an offering is checked against its
// technician.
type ActorGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
}
