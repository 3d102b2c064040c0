package repository

import (
	"context"
	"strings"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

func (r *ActorRepository) Create(ctx context.Context, a *domain.Actor) error {
	a.Email = strings.TrimSpace(strings.ToLower(a.Email))
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActorRepository) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	var a domain.Actor
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActorRepository) GetByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	var a domain.Actor
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Actor{}).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ActorRepository) Update(ctx context.Context, a *domain.Actor) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ActorRepository) List(ctx context.Context, role domain.Role, limit, offset int) ([]domain.Actor, error) {
	var out []domain.Actor
	q := r.db.WithContext(ctx).Order("id")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

// Delete removes the actor and its role-specific detail rows. Reservations
// and other history referencing the actor id are left in place.
func (r *ActorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("actor_id = ?", id).Delete(&domain.TechnicianProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("actor_id = ?", id).Delete(&domain.AdminDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Actor{}, id).Error
	})
}

func (r *ActorRepository) CreateTechnicianProfile(ctx context.Context, p *domain.TechnicianProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ActorRepository) GetTechnicianProfile(ctx context.Context, actorID int64) (*domain.TechnicianProfile, error) {
	var p domain.TechnicianProfile
	if err := r.db.WithContext(ctx).Where("actor_id = ?", actorID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ActorRepository) SaveTechnicianProfile(ctx context.Context, p *domain.TechnicianProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ActorRepository) CreateAdminDetail(ctx context.Context, d *domain.AdminDetail) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ActorRepository) GetAdminDetail(ctx context.Context, actorID int64) (*domain.AdminDetail, error) {
	var d domain.AdminDetail
	if err := r.db.WithContext(ctx).Where("actor_id = ?", actorID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
