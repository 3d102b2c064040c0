package reservation

import (
	"context"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/repository"
)

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	List(ctx context.Context, f repository.ReservationFilter, limit, offset int) ([]domain.Reservation, int64, error)
	Delete(ctx context.Context, id int64) error
}

type OfferingChecker interface {
	Exists(ctx context.Context, technicianID, serviceID int64) (bool, error)
}

type ActorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Actor, error)
}

type ServiceGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// PaymentSummer supplies the payment total a reservation projection carries.
type PaymentSummer interface {
	SumByReservation(ctx context.Context, reservationID int64) (float64, error)
}

type ReviewChecker interface {
	ExistsByReservation(ctx context.Context, reservationID int64) (bool, error)
}

type EventPublisher interface {
	Publish(e events.Event)
}
