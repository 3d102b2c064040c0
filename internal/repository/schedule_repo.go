package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	var s domain.AvailabilitySlot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) List(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	var out []domain.AvailabilitySlot
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *ScheduleRepository) ListByDay(ctx context.Context, day domain.Weekday) ([]domain.AvailabilitySlot, error) {
	var out []domain.AvailabilitySlot
	err := r.db.WithContext(ctx).Where("day_of_week = ?", day).Order("id").Find(&out).Error
	return out, err
}

func (r *ScheduleRepository) ListAvailable(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	var out []domain.AvailabilitySlot
	err := r.db.WithContext(ctx).Where("status = ?", domain.SlotAvailable).Order("id").Find(&out).Error
	return out, err
}

func (r *ScheduleRepository) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.AvailabilitySlot, error) {
	var out []domain.AvailabilitySlot
	err := r.db.WithContext(ctx).
		Joins("JOIN technician_slots ts ON ts.slot_id = availability_slots.id").
		Where("ts.technician_id = ?", technicianID).
		Order("availability_slots.id").
		Find(&out).Error
	return out, err
}

func (r *ScheduleRepository) Update(ctx context.Context, s *domain.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	return r.db.WithContext(ctx).Model(&domain.AvailabilitySlot{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_id = ?", id).Delete(&domain.TechnicianSlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.AvailabilitySlot{}, id).Error
	})
}

func (r *ScheduleRepository) Attach(ctx context.Context, technicianID, slotID int64) error {
	return r.db.WithContext(ctx).Create(&domain.TechnicianSlot{
		TechnicianID: technicianID,
		SlotID:       slotID,
	}).Error
}

func (r *ScheduleRepository) Detach(ctx context.Context, technicianID, slotID int64) error {
	return r.db.WithContext(ctx).
		Where("technician_id = ? AND slot_id = ?", technicianID, slotID).
		Delete(&domain.TechnicianSlot{}).Error
}
