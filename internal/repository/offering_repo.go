package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type OfferingRepository struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

func (r *OfferingRepository) Create(ctx context.Context, o *domain.Offering) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferingRepository) Get(ctx context.Context, technicianID, serviceID int64) (*domain.Offering, error) {
	var o domain.Offering
	err := r.db.WithContext(ctx).
		Where("technician_id = ? AND service_id = ?", technicianID, serviceID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferingRepository) Exists(ctx context.Context, technicianID, serviceID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Offering{}).
		Where("technician_id = ? AND service_id = ?", technicianID, serviceID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *OfferingRepository) List(ctx context.Context) ([]domain.Offering, error) {
	var out []domain.Offering
	err := r.db.WithContext(ctx).Order("technician_id, service_id").Find(&out).Error
	return out, err
}

func (r *OfferingRepository) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Offering, error) {
	var out []domain.Offering
	err := r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Order("service_id").
		Find(&out).Error
	return out, err
}

func (r *OfferingRepository) UpdateBaseRate(ctx context.Context, technicianID, serviceID int64, rate float64) error {
	return r.db.WithContext(ctx).Model(&domain.Offering{}).
		Where("technician_id = ? AND service_id = ?", technicianID, serviceID).
		Update("base_rate", rate).Error
}

func (r *OfferingRepository) Delete(ctx context.Context, technicianID, serviceID int64) error {
	return r.db.WithContext(ctx).
		Where("technician_id = ? AND service_id = ?", technicianID, serviceID).
		Delete(&domain.Offering{}).Error
}
