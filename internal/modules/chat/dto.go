package chat

import "fieldserve/internal/domain"

type CreateChatRequest struct {
	ReservationID *int64 `json:"reservation_id"`
	TicketID      *int64 `json:"ticket_id"`
}

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type ChatResponse struct {
	domain.Chat
	Unread int64 `json:"unread"`
}
