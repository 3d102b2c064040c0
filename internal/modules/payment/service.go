package payment

import (
	"context"
	"fmt"
	"log"
	"time"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/pkg/apperr"
)

type Service struct {
	payments     PaymentRepository
	reservations ReservationGetter
	actors       ActorGetter
	bus          EventPublisher
}

func NewService(payments PaymentRepository, reservations ReservationGetter, actors ActorGetter, bus EventPublisher) *Service {
	return &Service{payments: payments, reservations: reservations, actors: actors, bus: bus}
}

// Create records a pending ledger entry. The amount is trusted as supplied
// and is not reconciled against the offering's base rate.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if _, err := s.reservations.GetByID(ctx, req.ReservationID); err != nil {
		return nil, apperr.NotFound("Reservation", "id", req.ReservationID)
	}

	p := &domain.Payment{
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		PaymentDate:   time.Now(),
		Method:        domain.PaymentMethod(req.Method),
		Status:        domain.PaymentPending,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Payment", "id", id)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, reservationID int64, status string) ([]domain.Payment, error) {
	if reservationID > 0 {
		return s.payments.ListByReservation(ctx, reservationID)
	}
	if status != "" {
		return s.payments.ListByStatus(ctx, domain.PaymentStatus(status))
	}
	return s.payments.List(ctx)
}

// Process moves a pending payment to completed and announces it.
func (s *Service) Process(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Payment", "id", id)
	}
	if p.Status != domain.PaymentPending {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot process payment in status %s", p.Status))
	}

	p.Status = domain.PaymentCompleted
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}

	payload := events.PaymentCompleted{
		PaymentID:     p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Method:        p.Method,
	}
	if r, err := s.reservations.GetByID(ctx, p.ReservationID); err == nil {
		if customer, err := s.actors.GetByID(ctx, r.CustomerID); err == nil {
			payload.CustomerEmail = customer.Email
		}
	}
	s.bus.Publish(events.New(events.TypePaymentCompleted, payload))

	log.Printf("level=info msg=payment completed id=%d reservation=%d amount=%.2f", p.ID, p.ReservationID, p.Amount)
	return p, nil
}

func (s *Service) Fail(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.close(ctx, id, domain.PaymentFailed)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.close(ctx, id, domain.PaymentCancelled)
}

// Refund reverses a completed payment; any other status is rejected.
func (s *Service) Refund(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Payment", "id", id)
	}
	if p.Status != domain.PaymentCompleted {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot refund payment in status %s", p.Status))
	}

	p.Status = domain.PaymentRefunded
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.payments.GetByID(ctx, id); err != nil {
		return apperr.NotFound("Payment", "id", id)
	}
	return s.payments.Delete(ctx, id)
}

// close marks a non-terminal payment failed or cancelled.
func (s *Service) close(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Payment", "id", id)
	}
	if p.Status.Terminal() {
		return nil, apperr.InvalidState(fmt.Sprintf("payment already in terminal status %s", p.Status))
	}

	p.Status = status
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
