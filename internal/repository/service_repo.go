package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Service{}).Where("name = ?", name).Count(&cnt).Error
	return cnt > 0, err
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *ServiceRepository) ListByCategory(ctx context.Context, c domain.ServiceCategory) ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.WithContext(ctx).Where("category = ?", c).Order("id").Find(&out).Error
	return out, err
}

func (r *ServiceRepository) CountByCategory(ctx context.Context, c domain.ServiceCategory) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Service{}).Where("category = ?", c).Count(&cnt).Error
	return cnt, err
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Service{}, id).Error
}
