package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type CertificationRepository struct {
	db *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{db: db}
}

func (r *CertificationRepository) Create(ctx context.Context, c *domain.Certification) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CertificationRepository) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	var c domain.Certification
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificationRepository) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Certification, error) {
	var out []domain.Certification
	err := r.db.WithContext(ctx).Where("technician_id = ?", technicianID).Order("id").Find(&out).Error
	return out, err
}

func (r *CertificationRepository) ListByStatus(ctx context.Context, status domain.CertificationStatus) ([]domain.Certification, error) {
	var out []domain.Certification
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&out).Error
	return out, err
}

func (r *CertificationRepository) Update(ctx context.Context, c *domain.Certification) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CertificationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Certification{}, id).Error
}
