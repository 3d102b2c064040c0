package certification

import (
	"context"
	"fmt"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/pkg/apperr"
)

type Service struct {
	certifications CertificationRepository
	actors         ActorGetter
	bus            EventPublisher
}

func NewService(certifications CertificationRepository, actors ActorGetter, bus EventPublisher) *Service {
	return &Service{certifications: certifications, actors: actors, bus: bus}
}

func (s *Service) Create(ctx context.Context, req CreateCertificationRequest) (*domain.Certification, error) {
	tech, err := s.actors.GetByID(ctx, req.TechnicianID)
	if err != nil {
		return nil, apperr.NotFound("Actor", "id", req.TechnicianID)
	}
	if tech.Role != domain.RoleTechnician {
		return nil, apperr.Validation(map[string]string{"technician_id": "actor is not a technician"})
	}

	c := &domain.Certification{
		TechnicianID: req.TechnicianID,
		Name:         req.Name,
		Institution:  req.Institution,
		IssuedAt:     req.IssuedAt,
		Status:       domain.CertificationPending,
	}
	if err := s.certifications.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Certification, error) {
	c, err := s.certifications.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Certification", "id", id)
	}
	return c, nil
}

func (s *Service) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Certification, error) {
	return s.certifications.ListByTechnician(ctx, technicianID)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.Certification, error) {
	return s.certifications.ListByStatus(ctx, domain.CertificationStatus(status))
}

// Validate approves a pending certification and notifies the technician.
func (s *Service) Validate(ctx context.Context, id, adminID int64) (*domain.Certification, error) {
	c, err := s.certifications.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Certification", "id", id)
	}
	if c.Status != domain.CertificationPending {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot validate certification in status %s", c.Status))
	}

	c.Status = domain.CertificationValidated
	c.ValidatedBy = &adminID
	if err := s.certifications.Update(ctx, c); err != nil {
		return nil, err
	}

	payload := events.CertificationValidated{
		CertificationID: c.ID,
		TechnicianID:    c.TechnicianID,
		Name:            c.Name,
	}
	if tech, err := s.actors.GetByID(ctx, c.TechnicianID); err == nil {
		payload.TechnicianEmail = tech.Email
	}
	s.bus.Publish(events.New(events.TypeCertificationValidated, payload))

	return c, nil
}

func (s *Service) Reject(ctx context.Context, id, adminID int64) (*domain.Certification, error) {
	c, err := s.certifications.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Certification", "id", id)
	}
	if c.Status != domain.CertificationPending {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot reject certification in status %s", c.Status))
	}

	c.Status = domain.CertificationRejected
	c.ValidatedBy = &adminID
	if err := s.certifications.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.certifications.GetByID(ctx, id); err != nil {
		return apperr.NotFound("Certification", "id", id)
	}
	return s.certifications.Delete(ctx, id)
}
