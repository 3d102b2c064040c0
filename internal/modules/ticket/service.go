package ticket

import (
	"context"
	"fmt"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/pkg/apperr"
)

type Service struct {
	tickets      TicketRepository
	reservations ReservationGetter
	payments     PaymentGetter
	actors       ActorGetter
	bus          EventPublisher
}

func NewService(tickets TicketRepository, reservations ReservationGetter, payments PaymentGetter, actors ActorGetter, bus EventPublisher) *Service {
	return &Service{tickets: tickets, reservations: reservations, payments: payments, actors: actors, bus: bus}
}

func (s *Service) Create(ctx context.Context, req CreateTicketRequest) (*domain.SupportTicket, error) {
	r, err := s.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		return nil, apperr.NotFound("Reservation", "id", req.ReservationID)
	}
	if req.PaymentID != nil {
		if _, err := s.payments.GetByID(ctx, *req.PaymentID); err != nil {
			return nil, apperr.NotFound("Payment", "id", *req.PaymentID)
		}
	}

	priority := domain.TicketPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}
	category := domain.TicketCategory(req.Category)
	if category == "" {
		category = domain.TicketCategoryOther
	}

	t := &domain.SupportTicket{
		ReservationID: req.ReservationID,
		PaymentID:     req.PaymentID,
		Subject:       req.Subject,
		Description:   req.Description,
		Status:        domain.TicketOpen,
		Priority:      priority,
		Category:      category,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}

	payload := events.TicketCreated{
		TicketID: t.ID,
		Subject:  t.Subject,
		Priority: t.Priority,
	}
	if customer, err := s.actors.GetByID(ctx, r.CustomerID); err == nil {
		payload.CustomerEmail = customer.Email
	}
	s.bus.Publish(events.New(events.TypeTicketCreated, payload))

	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("SupportTicket", "id", id)
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, page, size int) ([]domain.SupportTicket, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	return s.tickets.List(ctx, size, page*size)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.SupportTicket, error) {
	return s.tickets.ListByStatus(ctx, domain.TicketStatus(status))
}

func (s *Service) ListByReservation(ctx context.Context, reservationID int64) ([]domain.SupportTicket, error) {
	return s.tickets.ListByReservation(ctx, reservationID)
}

func (s *Service) ListByAdmin(ctx context.Context, adminID int64) ([]domain.SupportTicket, error) {
	return s.tickets.ListByAdmin(ctx, adminID)
}

func (s *Service) ListUnassigned(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.tickets.ListUnassigned(ctx)
}

// Assign hands the ticket to an admin and moves it to in_progress.
func (s *Service) Assign(ctx context.Context, id, adminID int64) (*domain.SupportTicket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("SupportTicket", "id", id)
	}
	if t.Status == domain.TicketClosed {
		return nil, apperr.InvalidState("cannot assign a closed ticket")
	}

	admin, err := s.actors.GetByID(ctx, adminID)
	if err != nil {
		return nil, apperr.NotFound("Actor", "id", adminID)
	}
	if admin.Role != domain.RoleAdmin && admin.Role != domain.RoleSuperAdmin {
		return nil, apperr.Validation(map[string]string{"admin_id": "actor is not an admin"})
	}

	t.AdminID = &adminID
	t.Status = domain.TicketInProgress
	if err := s.tickets.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Resolve(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	return s.transition(ctx, id, domain.TicketResolved)
}

func (s *Service) Close(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	return s.transition(ctx, id, domain.TicketClosed)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.tickets.GetByID(ctx, id); err != nil {
		return apperr.NotFound("SupportTicket", "id", id)
	}
	return s.tickets.Delete(ctx, id)
}

func (s *Service) transition(ctx context.Context, id int64, status domain.TicketStatus) (*domain.SupportTicket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("SupportTicket", "id", id)
	}
	if t.Status == domain.TicketClosed {
		return nil, apperr.InvalidState(fmt.Sprintf("ticket already closed, cannot move to %s", status))
	}

	t.Status = status
	if err := s.tickets.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
