package review

import (
	"context"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error)
	ExistsByReservation(ctx context.Context, reservationID int64) (bool, error)
	List(ctx context.Context) ([]domain.Review, error)
	ListByStatus(ctx context.Context, status domain.ReviewStatus) ([]domain.Review, error)
	ListByRating(ctx context.Context, rating int) ([]domain.Review, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
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
