package catalog

import (
	"context"
	"fmt"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/apperr"
)

type Service struct {
	services  ServiceRepository
	offerings OfferingRepository
	actors    ActorGetter
}

func NewService(services ServiceRepository, offerings OfferingRepository, actors ActorGetter) *Service {
	return &Service{services: services, offerings: offerings, actors: actors}
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	exists, err := s.services.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Service", "name", req.Name)
	}

	svc := &domain.Service{
		Name:           req.Name,
		Description:    req.Description,
		Category:       domain.ServiceCategory(req.Category),
		SuggestedPrice: req.SuggestedPrice,
		IsActive:       true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Service", "id", id)
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context, category string) ([]domain.Service, error) {
	if category != "" {
		return s.services.ListByCategory(ctx, domain.ServiceCategory(category))
	}
	return s.services.List(ctx)
}

func (s *Service) CountByCategory(ctx context.Context, category string) (int64, error) {
	return s.services.CountByCategory(ctx, domain.ServiceCategory(category))
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Service", "id", id)
	}

	if req.Name != nil && *req.Name != svc.Name {
		exists, err := s.services.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.Conflict("Service", "name", *req.Name)
		}
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Category != nil {
		svc.Category = domain.ServiceCategory(*req.Category)
	}
	if req.SuggestedPrice != nil {
		svc.SuggestedPrice = *req.SuggestedPrice
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		return apperr.NotFound("Service", "id", id)
	}
	return s.services.Delete(ctx, id)
}

func (s *Service) CreateOffering(ctx context.Context, req CreateOfferingRequest) (*domain.Offering, error) {
	tech, err := s.actors.GetByID(ctx, req.TechnicianID)
	if err != nil {
		return nil, apperr.NotFound("Actor", "id", req.TechnicianID)
	}
	if tech.Role != domain.RoleTechnician {
		return nil, apperr.Validation(map[string]string{"technician_id": "actor is not a technician"})
	}
	if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
		return nil, apperr.NotFound("Service", "id", req.ServiceID)
	}

	exists, err := s.offerings.Exists(ctx, req.TechnicianID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Offering", "technicianId-serviceId", pairKey(req.TechnicianID, req.ServiceID))
	}

	o := &domain.Offering{
		TechnicianID: req.TechnicianID,
		ServiceID:    req.ServiceID,
		BaseRate:     req.BaseRate,
	}
	if err := s.offerings.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) GetOffering(ctx context.Context, technicianID, serviceID int64) (*domain.Offering, error) {
	o, err := s.offerings.Get(ctx, technicianID, serviceID)
	if err != nil {
		return nil, apperr.NotFound("Offering", "technicianId-serviceId", pairKey(technicianID, serviceID))
	}
	return o, nil
}

func (s *Service) ListOfferings(ctx context.Context, technicianID int64) ([]domain.Offering, error) {
	if technicianID > 0 {
		return s.offerings.ListByTechnician(ctx, technicianID)
	}
	return s.offerings.List(ctx)
}

func (s *Service) UpdateOfferingRate(ctx context.Context, technicianID, serviceID int64, rate float64) (*domain.Offering, error) {
	if _, err := s.offerings.Get(ctx, technicianID, serviceID); err != nil {
		return nil, apperr.NotFound("Offering", "technicianId-serviceId", pairKey(technicianID, serviceID))
	}
	if err := s.offerings.UpdateBaseRate(ctx, technicianID, serviceID, rate); err != nil {
		return nil, err
	}
	return s.offerings.Get(ctx, technicianID, serviceID)
}

func (s *Service) DeleteOffering(ctx context.Context, technicianID, serviceID int64) error {
	if _, err := s.offerings.Get(ctx, technicianID, serviceID); err != nil {
		return apperr.NotFound("Offering", "technicianId-serviceId", pairKey(technicianID, serviceID))
	}
	return s.offerings.Delete(ctx, technicianID, serviceID)
}

func pairKey(technicianID, serviceID int64) string {
	return fmt.Sprintf("%d-%d", technicianID, serviceID)
}
