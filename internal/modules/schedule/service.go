package schedule

import (
	"context"
	"time"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/apperr"
)

type Service struct {
	slots  SlotRepository
	actors ActorGetter
}

func NewService(slots SlotRepository, actors ActorGetter) *Service {
	return &Service{slots: slots, actors: actors}
}

// CreateSlot stores a weekly window. Overlapping windows are allowed.
func (s *Service) CreateSlot(ctx context.Context, req CreateSlotRequest) (*domain.AvailabilitySlot, error) {
	if err := checkWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	slot := &domain.AvailabilitySlot{
		DayOfWeek: domain.Weekday(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.SlotAvailable,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) GetSlot(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("AvailabilitySlot", "id", id)
	}
	return slot, nil
}

func (s *Service) ListSlots(ctx context.Context, day string, availableOnly bool) ([]domain.AvailabilitySlot, error) {
	if day != "" {
		return s.slots.ListByDay(ctx, domain.Weekday(day))
	}
	if availableOnly {
		return s.slots.ListAvailable(ctx)
	}
	return s.slots.List(ctx)
}

func (s *Service) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.AvailabilitySlot, error) {
	return s.slots.ListByTechnician(ctx, technicianID)
}

func (s *Service) UpdateSlot(ctx context.Context, id int64, req UpdateSlotRequest) (*domain.AvailabilitySlot, error) {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("AvailabilitySlot", "id", id)
	}

	if req.DayOfWeek != nil {
		slot.DayOfWeek = domain.Weekday(*req.DayOfWeek)
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if err := checkWindow(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}
	if req.Status != nil {
		slot.Status = domain.SlotStatus(*req.Status)
	}

	if err := s.slots.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*domain.AvailabilitySlot, error) {
	if _, err := s.slots.GetByID(ctx, id); err != nil {
		return nil, apperr.NotFound("AvailabilitySlot", "id", id)
	}
	if err := s.slots.UpdateStatus(ctx, id, domain.SlotStatus(status)); err != nil {
		return nil, err
	}
	return s.slots.GetByID(ctx, id)
}

func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	if _, err := s.slots.GetByID(ctx, id); err != nil {
		return apperr.NotFound("AvailabilitySlot", "id", id)
	}
	return s.slots.Delete(ctx, id)
}

func (s *Service) AttachTechnician(ctx context.Context, slotID, technicianID int64) error {
	if _, err := s.slots.GetByID(ctx, slotID); err != nil {
		return apperr.NotFound("AvailabilitySlot", "id", slotID)
	}
	tech, err := s.actors.GetByID(ctx, technicianID)
	if err != nil {
		return apperr.NotFound("Actor", "id", technicianID)
	}
	if tech.Role != domain.RoleTechnician {
		return apperr.Validation(map[string]string{"technician_id": "actor is not a technician"})
	}
	return s.slots.Attach(ctx, technicianID, slotID)
}

func (s *Service) DetachTechnician(ctx context.Context, slotID, technicianID int64) error {
	return s.slots.Detach(ctx, technicianID, slotID)
}

func checkWindow(start, end string) error {
	st, err := time.Parse("15:04", start)
	if err != nil {
		return apperr.Validation(map[string]string{"start_time": "must be HH:MM"})
	}
	et, err := time.Parse("15:04", end)
	if err != nil {
		return apperr.Validation(map[string]string{"end_time": "must be HH:MM"})
	}
	if !et.After(st) {
		return apperr.Validation(map[string]string{"end_time": "must be after start_time"})
	}
	return nil
}
