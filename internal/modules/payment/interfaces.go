package payment

import (
	"context"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}

type ReservationGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

type ActorGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
}

type EventPublisher interface {
	Publish(e events.Event)
}
