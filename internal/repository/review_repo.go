package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).Where("reservation_id = ?", reservationID).First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) ExistsByReservation(ctx context.Context, reservationID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("reservation_id = ?", reservationID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListByStatus(ctx context.Context, status domain.ReviewStatus) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListByRating(ctx context.Context, rating int) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).Where("rating = ?", rating).Order("id").Find(&out).Error
	return out, err
}

// ListByTechnician resolves reviews through the reservations the technician
// served; reviews do not hold a technician id themselves.
func (r *ReviewRepository) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Joins("JOIN reservations res ON res.id = reviews.reservation_id").
		Where("res.technician_id = ?", technicianID).
		Order("reviews.id").
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}
