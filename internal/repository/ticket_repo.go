package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.SupportTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) List(ctx context.Context, limit, offset int) ([]domain.SupportTicket, int64, error) {
	var (
		out   []domain.SupportTicket
		total int64
	)
	q := r.db.WithContext(ctx).Model(&domain.SupportTicket{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *TicketRepository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := r.db.WithContext(ctx).Where("reservation_id = ?", reservationID).Order("id").Find(&out).Error
	return out, err
}

func (r *TicketRepository) ListUnassigned(ctx context.Context) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := r.db.WithContext(ctx).Where("admin_id IS NULL").Order("id").Find(&out).Error
	return out, err
}

func (r *TicketRepository) ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&out).Error
	return out, err
}

func (r *TicketRepository) ListByAdmin(ctx context.Context, adminID int64) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Order("id").Find(&out).Error
	return out, err
}

func (r *TicketRepository) Update(ctx context.Context, t *domain.SupportTicket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.SupportTicket{}, id).Error
}
