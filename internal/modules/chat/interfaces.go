package chat

import (
	"context"

	"fieldserve/internal/domain"
)

type ChatRepository interface {
	Create(ctx context.Context, c *domain.Chat) error
	GetByID(ctx context.Context, id int64) (*domain.Chat, error)
	ListByParticipant(ctx context.Context, actorID int64) ([]domain.Chat, error)
	GetByReservation(ctx context.Context, reservationID int64) (*domain.Chat, error)
	Update(ctx context.Context, c *domain.Chat) error
	CreateMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, chatID int64, limit, offset int) ([]domain.Message, error)
	MarkRead(ctx context.Context, chatID, readerID int64) error
	CountUnread(ctx context.Context, chatID, readerID int64) (int64, error)
}

type ReservationGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

type TicketGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error)
}

// MessagePusher delivers a message to an online actor; false means offline
// or the write failed.
type MessagePusher interface {
	SendToActor(actorID int64, message any) bool
}
