package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).Where("reservation_id = ?", reservationID).Order("id").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Payment{}, id).Error
}

// SumByReservation totals payment amounts for a reservation, 0 when none.
func (r *PaymentRepository) SumByReservation(ctx context.Context, reservationID int64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("reservation_id = ?", reservationID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
