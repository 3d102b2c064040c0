package ticket

import (
	"context"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
)

type TicketRepository interface {
	Create(ctx context.Context, t *domain.SupportTicket) error
	GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error)
	List(ctx context.Context, limit, offset int) ([]domain.SupportTicket, int64, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.SupportTicket, error)
	ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error)
	ListByAdmin(ctx context.Context, adminID int64) ([]domain.SupportTicket, error)
	ListUnassigned(ctx context.Context) ([]domain.SupportTicket, error)
	Update(ctx context.Context, t *domain.SupportTicket) error
	Delete(ctx context.Context, id int64) error
}

type ReservationGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

type PaymentGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
}

type ActorGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
}

type EventPublisher interface {
	Publish(e events.Event)
}
