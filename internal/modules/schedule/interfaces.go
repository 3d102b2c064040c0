package schedule

import (
	"context"

	"fieldserve/internal/domain"
)

type SlotRepository interface {
	Create(ctx context.Context, s *domain.AvailabilitySlot) error
	GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error)
	List(ctx context.Context) ([]domain.AvailabilitySlot, error)
	ListByDay(ctx context.Context, day domain.Weekday) ([]domain.AvailabilitySlot, error)
	ListAvailable(ctx context.Context) ([]domain.AvailabilitySlot, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]domain.AvailabilitySlot, error)
	Update(ctx context.Context, s *domain.AvailabilitySlot) error
	UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error
	Delete(ctx context.Context, id int64) error
	Attach(ctx context.Context, technicianID, slotID int64) error
	Detach(ctx context.Context, technicianID, slotID int64) error
}

type ActorGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
}
