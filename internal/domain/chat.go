package domain

import "time"

type ChatStatus string

const (
	ChatOpen     ChatStatus = "open"
	ChatClosed   ChatStatus = "closed"
	ChatArchived ChatStatus = "archived"
)

type ChatType string

const (
	ChatReservation ChatType = "reservation"
	ChatSupport     ChatType = "support"
)

// Chat is a message thread attached to a reservation or a support ticket.
type Chat struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	ReservationID *int64     `json:"reservation_id,omitempty"`
	TicketID      *int64     `json:"ticket_id,omitempty"`
	Type          ChatType   `json:"type"`
	Status        ChatStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MessageStatus string

const (
	MessageSent MessageStatus = "sent"
	MessageRead MessageStatus = "read"
)

type MessageType string

const (
	MessageText   MessageType = "text"
	MessageSystem MessageType = "system"
)

type Message struct {
	ID         int64         `json:"id" gorm:"primaryKey"`
	ChatID     int64         `json:"chat_id" gorm:"index" validate:"required"`
	SenderID   int64         `json:"sender_id" validate:"required"`
	ReceiverID int64         `json:"receiver_id" validate:"required"`
	Content    string        `json:"content" gorm:"type:text"`
	Type       MessageType   `json:"type"`
	Status     MessageStatus `json:"status"`
	SentAt     time.Time     `json:"sent_at"`
}
