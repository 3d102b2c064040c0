package reservation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/pkg/apperr"
	"fieldserve/internal/pkg/validator"
	"fieldserve/internal/repository"
)

type Service struct {
	reservations ReservationRepository
	offerings    OfferingChecker
	actors       ActorRepository
	services     ServiceGetter
	payments     PaymentSummer
	reviews      ReviewChecker
	bus          EventPublisher
}

func NewService(
	reservations ReservationRepository,
	offerings OfferingChecker,
	actors ActorRepository,
	services ServiceGetter,
	payments PaymentSummer,
	reviews ReviewChecker,
	bus EventPublisher,
) *Service {
	return &Service{
		reservations: reservations,
		offerings:    offerings,
		actors:       actors,
		services:     services,
		payments:     payments,
		reviews:      reviews,
		bus:          bus,
	}
}

// Create books the offering for the caller. The technician's calendar is not
// checked; two reservations may share a slot.
func (s *Service) Create(ctx context.Context, customerEmail string, req CreateReservationRequest) (*domain.Reservation, error) {
	customer, err := s.actors.GetByEmail(ctx, customerEmail)
	if err != nil {
		return nil, apperr.NotFound("Actor", "email", customerEmail)
	}

	ok, err := s.offerings.Exists(ctx, req.TechnicianID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Offering", "technicianId-serviceId",
			fmt.Sprintf("%d-%d", req.TechnicianID, req.ServiceID))
	}

	serviceDate, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		return nil, apperr.Validation(map[string]string{"service_date": "must be YYYY-MM-DD"})
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, apperr.Validation(map[string]string{"start_time": "must be HH:MM"})
	}

	now := time.Now()
	r := &domain.Reservation{
		CustomerID:      customer.ID,
		TechnicianID:    req.TechnicianID,
		ServiceID:       req.ServiceID,
		ReservationDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		ServiceDate:     serviceDate,
		StartTime:       req.StartTime,
		Address:         req.Address,
		Status:          domain.ReservationPending,
	}
	if err := s.reservations.Create(ctx, r); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, r, customer)
	return r, nil
}

func (s *Service) publishCreated(ctx context.Context, r *domain.Reservation, customer *domain.Actor) {
	payload := events.ReservationCreated{
		ReservationID: r.ID,
		CustomerID:    r.CustomerID,
		TechnicianID:  r.TechnicianID,
		CustomerEmail: customer.Email,
		ServiceDate:   r.ServiceDate.Format("2006-01-02"),
	}
	if tech, err := s.actors.GetByID(ctx, r.TechnicianID); err == nil {
		payload.TechnicianEmail = tech.Email
	}
	if svc, err := s.services.GetByID(ctx, r.ServiceID); err == nil {
		payload.ServiceName = svc.Name
	}
	s.bus.Publish(events.New(events.TypeReservationCreated, payload))
}

// Confirm accepts a pending-or-any reservation on behalf of its technician.
// Only ownership is checked, not the current status.
func (s *Service) Confirm(ctx context.Context, id int64, callerEmail string) (*domain.Reservation, error) {
	r, tech, err := s.ownedByTechnician(ctx, id, callerEmail)
	if err != nil {
		return nil, err
	}

	r.Status = domain.ReservationConfirmed
	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, err
	}

	payload := events.ReservationConfirmed{
		ReservationID:  r.ID,
		TechnicianName: tech.FullName(),
		ServiceDate:    r.ServiceDate.Format("2006-01-02"),
	}
	if customer, err := s.actors.GetByID(ctx, r.CustomerID); err == nil {
		payload.CustomerEmail = customer.Email
		payload.CustomerPhone = customer.Phone
	}
	s.bus.Publish(events.New(events.TypeReservationConfirmed, payload))

	return r, nil
}

func (s *Service) Reject(ctx context.Context, id int64, callerEmail string) (*domain.Reservation, error) {
	r, _, err := s.ownedByTechnician(ctx, id, callerEmail)
	if err != nil {
		return nil, err
	}

	r.Status = domain.ReservationRejected
	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Cancel moves the reservation to cancelled from any status, for any caller.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Reservation", "id", id)
	}

	r.Status = domain.ReservationCancelled
	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, err
	}

	log.Printf("level=info msg=reservation cancelled id=%d", r.ID)
	return r, nil
}

// Complete closes the reservation on behalf of its customer and stamps the
// end time with the completion clock time.
func (s *Service) Complete(ctx context.Context, id int64, callerEmail string) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Reservation", "id", id)
	}

	customer, err := s.actors.GetByID(ctx, r.CustomerID)
	if err != nil {
		return nil, apperr.NotFound("Actor", "id", r.CustomerID)
	}
	if !strings.EqualFold(callerEmail, customer.Email) {
		return nil, apperr.Forbidden("only the customer may complete the reservation")
	}
	if r.Status != domain.ReservationConfirmed && r.Status != domain.ReservationInProgress {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot complete reservation in status %s", r.Status))
	}

	end := time.Now().Format("15:04")
	r.EndTime = &end
	r.Status = domain.ReservationCompleted
	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, err
	}

	s.bus.Publish(events.New(events.TypeReservationCompleted, events.ReservationCompleted{
		ReservationID: r.ID,
		CustomerID:    r.CustomerID,
		TechnicianID:  r.TechnicianID,
		CustomerEmail: customer.Email,
	}))

	return r, nil
}

func (s *Service) UpdateReservation(ctx context.Context, id int64, req UpdateReservationRequest) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Reservation", "id", id)
	}

	if req.ServiceDate != nil {
		d, err := time.Parse("2006-01-02", *req.ServiceDate)
		if err != nil {
			return nil, apperr.Validation(map[string]string{"service_date": "must be YYYY-MM-DD"})
		}
		r.ServiceDate = d
	}
	if req.StartTime != nil {
		if _, err := time.Parse("15:04", *req.StartTime); err != nil {
			return nil, apperr.Validation(map[string]string{"start_time": "must be HH:MM"})
		}
		r.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if _, err := time.Parse("15:04", *req.EndTime); err != nil {
			return nil, apperr.Validation(map[string]string{"end_time": "must be HH:MM"})
		}
		r.EndTime = req.EndTime
	}
	if req.Address != nil {
		r.Address = *req.Address
	}
	if req.Status != nil {
		st := domain.ReservationStatus(*req.Status)
		switch st {
		case domain.ReservationPending, domain.ReservationConfirmed, domain.ReservationRejected,
			domain.ReservationInProgress, domain.ReservationCompleted,
			domain.ReservationCancelled, domain.ReservationNoShow:
			r.Status = st
		default:
			return nil, apperr.Validation(map[string]string{"status": "unknown status"})
		}
	}

	if fields := validator.Validate(r); fields != nil {
		return nil, apperr.Validation(fields)
	}

	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ReservationDetails, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Reservation", "id", id)
	}
	return s.project(ctx, r), nil
}

func (s *Service) List(ctx context.Context, f repository.ReservationFilter, page, size int) (*ListResponse, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}

	rows, total, err := s.reservations.List(ctx, f, size, page*size)
	if err != nil {
		return nil, err
	}

	items := make([]ReservationDetails, 0, len(rows))
	for i := range rows {
		items = append(items, *s.project(ctx, &rows[i]))
	}
	return &ListResponse{Items: items, Total: total, Page: page, Size: size}, nil
}

// Delete hard-removes the reservation and everything hanging off it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.reservations.GetByID(ctx, id); err != nil {
		return apperr.NotFound("Reservation", "id", id)
	}
	return s.reservations.Delete(ctx, id)
}

// project derives FinalPrice and HasReview. FinalPrice sums every payment
// row for the reservation regardless of payment status.
func (s *Service) project(ctx context.Context, r *domain.Reservation) *ReservationDetails {
	d := &ReservationDetails{Reservation: *r}
	if sum, err := s.payments.SumByReservation(ctx, r.ID); err == nil {
		d.FinalPrice = sum
	}
	if has, err := s.reviews.ExistsByReservation(ctx, r.ID); err == nil {
		d.HasReview = has
	}
	return d
}

func (s *Service) ownedByTechnician(ctx context.Context, id int64, callerEmail string) (*domain.Reservation, *domain.Actor, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperr.NotFound("Reservation", "id", id)
	}

	tech, err := s.actors.GetByID(ctx, r.TechnicianID)
	if err != nil {
		return nil, nil, apperr.NotFound("Actor", "id", r.TechnicianID)
	}
	if !strings.EqualFold(callerEmail, tech.Email) {
		return nil, nil, apperr.Forbidden("only the assigned technician may act on this reservation")
	}
	return r, tech, nil
}
