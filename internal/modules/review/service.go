package review

import (
	"context"
	"fmt"
	"math"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/pkg/apperr"
)

type Service struct {
	reviews      ReviewRepository
	reservations ReservationGetter
	actors       ActorGetter
	bus          EventPublisher
}

func NewService(reviews ReviewRepository, reservations ReservationGetter, actors ActorGetter, bus EventPublisher) *Service {
	return &Service{reviews: reviews, reservations: reservations, actors: actors, bus: bus}
}

// Create accepts one review per reservation, and only once the work is done.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	r, err := s.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		return nil, apperr.NotFound("Reservation", "id", req.ReservationID)
	}
	if r.Status != domain.ReservationCompleted {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot review reservation in status %s", r.Status))
	}

	exists, err := s.reviews.ExistsByReservation(ctx, req.ReservationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Review", "reservationId", req.ReservationID)
	}

	rv := &domain.Review{
		ReservationID: req.ReservationID,
		Comment:       req.Comment,
		Rating:        req.Rating,
		Status:        domain.ReviewActive,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	payload := events.ReviewCreated{
		ReviewID:     rv.ID,
		TechnicianID: r.TechnicianID,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
	}
	if tech, err := s.actors.GetByID(ctx, r.TechnicianID); err == nil {
		payload.TechnicianEmail = tech.Email
	}
	s.bus.Publish(events.New(events.TypeReviewCreated, payload))

	return rv, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Review", "id", id)
	}
	return rv, nil
}

func (s *Service) GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByReservation(ctx, reservationID)
	if err != nil {
		return nil, apperr.NotFound("Review", "reservationId", reservationID)
	}
	return rv, nil
}

func (s *Service) List(ctx context.Context, status string, rating int) ([]domain.Review, error) {
	if status != "" {
		return s.reviews.ListByStatus(ctx, domain.ReviewStatus(status))
	}
	if rating > 0 {
		return s.reviews.ListByRating(ctx, rating)
	}
	return s.reviews.List(ctx)
}

func (s *Service) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Review, error) {
	return s.reviews.ListByTechnician(ctx, technicianID)
}

// Update replaces comment and rating without re-checking the reservation.
func (s *Service) Update(ctx context.Context, id int64, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Review", "id", id)
	}

	rv.Comment = req.Comment
	rv.Rating = req.Rating
	rv.Status = domain.ReviewEdited
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Delete flags the review deleted; the row stays for the unique index.
func (s *Service) Delete(ctx context.Context, id int64) error {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return apperr.NotFound("Review", "id", id)
	}

	rv.Status = domain.ReviewDeleted
	return s.reviews.Update(ctx, rv)
}

// AverageRatingForTechnician averages active and edited reviews and rounds
// half-up to one decimal. Missing data yields 0.0, never an error.
func (s *Service) AverageRatingForTechnician(ctx context.Context, technicianID int64) float64 {
	rows, err := s.reviews.ListByTechnician(ctx, technicianID)
	if err != nil {
		return 0.0
	}

	var sum, n int
	for _, rv := range rows {
		if rv.Status == domain.ReviewActive || rv.Status == domain.ReviewEdited {
			sum += rv.Rating
			n++
		}
	}
	if n == 0 {
		return 0.0
	}

	avg := float64(sum) / float64(n)
	return math.Floor(avg*10+0.5) / 10
}
