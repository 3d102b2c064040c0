package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ReservationFilter narrows List. Zero values mean "no constraint".
type ReservationFilter struct {
	CustomerID   int64
	TechnicianID int64
	Status       domain.ReservationStatus
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// List pages in id order; there is no explicit sort key on reservations.
func (r *ReservationRepository) List(ctx context.Context, f ReservationFilter, limit, offset int) ([]domain.Reservation, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Reservation{})
	if f.CustomerID != 0 {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.TechnicianID != 0 {
		q = q.Where("technician_id = ?", f.TechnicianID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Reservation
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Delete removes the reservation and everything hanging off it: payments,
// review, tickets, chats and their messages.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var chatIDs []int64
		if err := tx.Model(&domain.Chat{}).Where("reservation_id = ?", id).Pluck("id", &chatIDs).Error; err != nil {
			return err
		}
		if len(chatIDs) > 0 {
			if err := tx.Where("chat_id IN ?", chatIDs).Delete(&domain.Message{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("reservation_id = ?", id).Delete(&domain.Chat{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reservation_id = ?", id).Delete(&domain.SupportTicket{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reservation_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reservation_id = ?", id).Delete(&domain.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Reservation{}, id).Error
	})
}
