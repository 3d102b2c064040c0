package repository

import (
	"context"

	"fieldserve/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, c *domain.Chat) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ChatRepository) GetByID(ctx context.Context, id int64) (*domain.Chat, error) {
	var c domain.Chat
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByParticipant finds chats the actor has sent or received messages in.
// Chats carry no participant columns of their own.
func (r *ChatRepository) ListByParticipant(ctx context.Context, actorID int64) ([]domain.Chat, error) {
	var out []domain.Chat
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&domain.Message{}).
			Select("chat_id").
			Where("sender_id = ? OR receiver_id = ?", actorID, actorID)).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *ChatRepository) GetByReservation(ctx context.Context, reservationID int64) (*domain.Chat, error) {
	var c domain.Chat
	if err := r.db.WithContext(ctx).Where("reservation_id = ?", reservationID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChatRepository) Update(ctx context.Context, c *domain.Chat) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatRepository) GetMessage(ctx context.Context, id int64) (*domain.Message, error) {
	var m domain.Message
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, chatID int64, limit, offset int) ([]domain.Message, error) {
	var out []domain.Message
	q := r.db.WithContext(ctx).Where("chat_id = ?", chatID).Order("id")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ChatRepository) MarkRead(ctx context.Context, chatID, readerID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND status = ?", chatID, readerID, domain.MessageSent).
		Update("status", domain.MessageRead).Error
}

func (r *ChatRepository) CountUnread(ctx context.Context, chatID, readerID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND status = ?", chatID, readerID, domain.MessageSent).
		Count(&cnt).Error
	return cnt, err
}
